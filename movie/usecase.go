package movie

import "context"

type Service interface {
	List(ctx context.Context, params ListParams) (Page, error)
	Get(ctx context.Context, id string) (Movie, error)
	Create(ctx context.Context, draft Draft) (string, error)
	Update(ctx context.Context, id string, draft Draft) (int64, error)
}

type Repository interface {
	List(ctx context.Context, params ListParams) (Page, error)
	Get(ctx context.Context, id string) (Movie, error)
	Create(ctx context.Context, m Movie) (string, error)
	Update(ctx context.Context, id string, m Movie) (int64, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) List(ctx context.Context, params ListParams) (Page, error) {
	return uc.r.List(ctx, params.Normalize())
}

func (uc *Usecase) Get(ctx context.Context, id string) (Movie, error) {
	return uc.r.Get(ctx, id)
}

func (uc *Usecase) Create(ctx context.Context, draft Draft) (string, error) {
	m, err := draft.Coerce()
	if err != nil {
		return "", err
	}
	return uc.r.Create(ctx, m)
}

// Update replaces every mutable field of the movie with the coerced draft.
// The returned count is 0 when no record carries the id; a missing record
// is not an error and never results in an insert.
func (uc *Usecase) Update(ctx context.Context, id string, draft Draft) (int64, error) {
	m, err := draft.Coerce()
	if err != nil {
		return 0, err
	}
	return uc.r.Update(ctx, id, m)
}
