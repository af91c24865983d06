package movie_test

import (
	"context"
	"testing"

	"filmoteca/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) List(ctx context.Context, params movie.ListParams) (movie.Page, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(movie.Page), args.Error(1)
}

func (m *MockMovieRepository) Get(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, mv movie.Movie) (string, error) {
	args := m.Called(ctx, mv)
	return args.String(0), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, id string, mv movie.Movie) (int64, error) {
	args := m.Called(ctx, id, mv)
	return args.Get(0).(int64), args.Error(1)
}

func TestList(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should normalize params before hitting the repository", func(t *testing.T) {
		page := movie.Page{Movies: []movie.Summary{{ID: "m1", Title: "Dune", Year: 2021}}, Total: 1}
		r.On("List", mock.Anything, movie.ListParams{Page: 1, Limit: 25}).Return(page, nil).Once()

		result, err := uc.List(context.Background(), movie.ListParams{})

		assert.NoError(t, err, "expected no error when listing movies")
		assert.Equal(t, page, result, "expected returned page to match")
		r.AssertExpectations(t)
	})

	t.Run("should pass explicit params through unchanged", func(t *testing.T) {
		params := movie.ListParams{Search: "dune", Page: 2, Limit: 10}
		r.On("List", mock.Anything, params).Return(movie.Page{Movies: []movie.Summary{}, Total: 0}, nil).Once()

		_, err := uc.List(context.Background(), params)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})
}

func TestGet(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should return the movie", func(t *testing.T) {
		m := movie.Movie{ID: "m1", Title: "Dune", Year: 2021}
		r.On("Get", mock.Anything, "m1").Return(m, nil).Once()

		result, err := uc.Get(context.Background(), "m1")

		assert.NoError(t, err)
		assert.Equal(t, m, result)
		r.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		r.On("Get", mock.Anything, "missing").Return(movie.Movie{}, movie.ErrNotFound).Once()

		_, err := uc.Get(context.Background(), "missing")

		assert.Equal(t, movie.ErrNotFound, err)
		r.AssertExpectations(t)
	})
}

func TestCreate(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should coerce the draft before storing", func(t *testing.T) {
		expected := movie.Movie{
			Title:  "Dune",
			Year:   2021,
			Genres: []string{"Sci-Fi", "Adventure"},
			Cast:   []string{"A", "B"},
		}
		r.On("Create", mock.Anything, expected).Return("new-id", nil).Once()

		id, err := uc.Create(context.Background(), movie.Draft{
			Title:  "Dune",
			Year:   "2021",
			Genres: "Sci-Fi, Adventure",
			Cast:   "A, B",
		})

		assert.NoError(t, err, "expected no error when creating movie")
		assert.Equal(t, "new-id", id)
		r.AssertExpectations(t)
	})

	t.Run("should fail on missing title without touching the repository", func(t *testing.T) {
		_, err := uc.Create(context.Background(), movie.Draft{Year: "2021"})

		assert.Equal(t, movie.ErrTitleRequired, err)
		r.AssertExpectations(t)
	})
}

func TestUpdate(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should return the repository's modified count", func(t *testing.T) {
		r.On("Update", mock.Anything, "m1", mock.Anything).Return(int64(1), nil).Once()

		count, err := uc.Update(context.Background(), "m1", movie.Draft{Title: "Dune", Year: "2021"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		r.AssertExpectations(t)
	})

	t.Run("should surface zero for an unknown id", func(t *testing.T) {
		r.On("Update", mock.Anything, "missing", mock.Anything).Return(int64(0), nil).Once()

		count, err := uc.Update(context.Background(), "missing", movie.Draft{Title: "Dune", Year: "2021"})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
		r.AssertExpectations(t)
	})

	t.Run("should fail on invalid year without touching the repository", func(t *testing.T) {
		_, err := uc.Update(context.Background(), "m1", movie.Draft{Title: "Dune", Year: "unknown"})

		assert.Equal(t, movie.ErrYearRequired, err)
		r.AssertExpectations(t)
	})
}
