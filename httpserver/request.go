package httpserver

import (
	"filmoteca/comment"
	"filmoteca/movie"
)

// MovieRequest is the shared create/update body. Year arrives as free
// text; all coercion lives in the movie domain.
type MovieRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	Year   string `json:"year" validate:"required,notblank"`
	Genres string `json:"genres"`
	Cast   string `json:"cast"`
	Poster string `json:"poster"`
}

func (r MovieRequest) ToDraft() movie.Draft {
	return movie.Draft{
		Title:  r.Title,
		Year:   r.Year,
		Genres: r.Genres,
		Cast:   r.Cast,
		Poster: r.Poster,
	}
}

type CommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Text    string `json:"text" validate:"required,notblank"`
	MovieID string `json:"movieId" validate:"required,notblank"`
}

func (r CommentRequest) ToComment() comment.Comment {
	return comment.Comment{
		Name:    r.Name,
		Email:   r.Email,
		Text:    r.Text,
		MovieID: r.MovieID,
	}
}
