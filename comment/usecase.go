package comment

import (
	"context"
	"strings"
	"time"
)

// DetailLimit caps the comments returned alongside a movie detail fetch.
// The standalone listing path passes no limit and stays unbounded.
const DetailLimit = 10

type Service interface {
	Create(ctx context.Context, c Comment) (string, error)
	ListForMovie(ctx context.Context, movieID string, limit int) ([]Comment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Repository interface {
	Create(ctx context.Context, c Comment) (string, error)
	ListForMovie(ctx context.Context, movieID string, limit int) ([]Comment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Usecase struct {
	r   Repository
	now func() time.Time
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r, now: time.Now}
}

// NewUsecaseWithClock pins the creation timestamp source, for tests.
func NewUsecaseWithClock(r Repository, now func() time.Time) *Usecase {
	return &Usecase{r: r, now: now}
}

// Create stores a comment. Text and movie id are required, a blank name
// defaults to AnonymousName and the date is stamped server-side; whatever
// date the caller supplied is discarded.
func (uc *Usecase) Create(ctx context.Context, c Comment) (string, error) {
	if strings.TrimSpace(c.Text) == "" {
		return "", ErrTextRequired
	}
	if strings.TrimSpace(c.MovieID) == "" {
		return "", ErrMovieIDRequired
	}

	if strings.TrimSpace(c.Name) == "" {
		c.Name = AnonymousName
	}
	c.Date = uc.now()

	return uc.r.Create(ctx, c)
}

// ListForMovie returns the movie's comments, newest first. A limit of 0
// or less means no cap.
func (uc *Usecase) ListForMovie(ctx context.Context, movieID string, limit int) ([]Comment, error) {
	return uc.r.ListForMovie(ctx, movieID, limit)
}

// Delete removes the comment and reports how many records went away.
// Deleting an unknown id is a no-op, not an error.
func (uc *Usecase) Delete(ctx context.Context, id string) (int64, error) {
	return uc.r.Delete(ctx, id)
}
