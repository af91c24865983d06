package comment

import (
	"time"

	"filmoteca/errs"
)

var (
	ErrTextRequired    = errs.Errorf(errs.EINVALID, "text is required")
	ErrMovieIDRequired = errs.Errorf(errs.EINVALID, "movie id is required")
)

// AnonymousName is stored when a commenter leaves the name field blank.
const AnonymousName = "Anonymous"

type Comment struct {
	ID      string    `json:"id"`
	MovieID string    `json:"movieId"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
}
