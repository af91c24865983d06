package postgres

import (
	"context"
	"errors"
	"strings"

	"filmoteca/movie"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// cast is a reserved word in SQL, hence the cast_members column.
type MovieModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"not null"`
	Year      int            `gorm:"not null"`
	Genres    pq.StringArray `gorm:"type:text[]"`
	Cast      pq.StringArray `gorm:"column:cast_members;type:text[]"`
	Directors pq.StringArray `gorm:"type:text[]"`
	Poster    *string
	Rating    *float64
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository on PostgreSQL.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// likeEscaper neutralizes LIKE metacharacters so the search term is always
// a literal substring, never a pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchScope applies the case-insensitive substring match across title,
// cast, directors and genres. An empty term matches everything.
func searchScope(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(term) + "%"
		return db.Where(
			`title ILIKE ? ESCAPE '\' OR array_to_string(cast_members, ',') ILIKE ? ESCAPE '\' OR
			 array_to_string(directors, ',') ILIKE ? ESCAPE '\' OR array_to_string(genres, ',') ILIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}
}

// List returns one page of summaries sorted by year descending, plus the
// total match count independent of paging.
func (r *MovieRepository) List(ctx context.Context, params movie.ListParams) (movie.Page, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Scopes(searchScope(params.Search)).
		Count(&total).Error
	if err != nil {
		return movie.Page{}, err
	}

	var models []MovieModel
	err = r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Scopes(searchScope(params.Search)).
		Select("id", "title", "year", "poster").
		Order("year DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return movie.Page{}, err
	}

	summaries := make([]movie.Summary, len(models))
	for i, model := range models {
		summaries[i] = movie.Summary{
			ID:     model.ID,
			Title:  model.Title,
			Year:   model.Year,
			Poster: model.Poster,
		}
	}
	return movie.Page{Movies: summaries, Total: total}, nil
}

func (r *MovieRepository) Get(ctx context.Context, id string) (movie.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return movie.Movie{}, err
	}

	var model MovieModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return toMovie(model), nil
}

func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (string, error) {
	model := toModel(m)
	model.ID = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", err
	}
	return model.ID, nil
}

// Update replaces the full mutable field set of the record, including
// clearing poster when the draft left it blank. The count is the number
// of rows the update touched: 0 when the id is unknown.
func (r *MovieRepository) Update(ctx context.Context, id string, m movie.Movie) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":        m.Title,
			"year":         m.Year,
			"genres":       pq.StringArray(m.Genres),
			"cast_members": pq.StringArray(m.Cast),
			"poster":       m.Poster,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toModel(m movie.Movie) MovieModel {
	return MovieModel{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Genres:    pq.StringArray(m.Genres),
		Cast:      pq.StringArray(m.Cast),
		Directors: pq.StringArray(m.Directors),
		Poster:    m.Poster,
		Rating:    m.Rating,
	}
}

func toMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:        model.ID,
		Title:     model.Title,
		Year:      model.Year,
		Genres:    model.Genres,
		Cast:      model.Cast,
		Directors: model.Directors,
		Poster:    model.Poster,
		Rating:    model.Rating,
	}
}
