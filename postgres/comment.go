package postgres

import (
	"context"
	"time"

	"filmoteca/comment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel represents the database model for comments. MovieID is not
// a foreign key on purpose: comments may outlive their movie.
type CommentModel struct {
	ID      string `gorm:"type:uuid;primaryKey"`
	MovieID string `gorm:"type:uuid;not null;index"`
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;default:''"`
	Text    string `gorm:"not null"`
	Date    time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// CommentRepository implements comment.Repository on PostgreSQL.
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c comment.Comment) (string, error) {
	if _, err := uuid.Parse(c.MovieID); err != nil {
		return "", err
	}

	model := CommentModel{
		ID:      uuid.NewString(),
		MovieID: c.MovieID,
		Name:    c.Name,
		Email:   c.Email,
		Text:    c.Text,
		Date:    c.Date,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", err
	}
	return model.ID, nil
}

// ListForMovie returns the movie's comments newest first. A non-positive
// limit disables the cap.
func (r *CommentRepository) ListForMovie(ctx context.Context, movieID string, limit int) ([]comment.Comment, error) {
	if _, err := uuid.Parse(movieID); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []CommentModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]comment.Comment, len(models))
	for i, model := range models {
		comments[i] = comment.Comment{
			ID:      model.ID,
			MovieID: model.MovieID,
			Name:    model.Name,
			Email:   model.Email,
			Text:    model.Text,
			Date:    model.Date,
		}
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
