package postgres

import (
	"context"

	"dsmovie/movie"
	"dsmovie/score"

	"gorm.io/gorm"
)

// ScoreModel represents the database model for scores. The composite
// primary key (movie_id, user_id) enforces one score per pair.
type ScoreModel struct {
	MovieID int64   `gorm:"column:movie_id;primaryKey"`
	UserID  int64   `gorm:"column:user_id;primaryKey"`
	Value   float64 `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ScoreModel) TableName() string {
	return "scores"
}

// ScoreRepository implements score.Repository interface
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) ListByMovie(ctx context.Context, movieID int64) ([]score.Score, error) {
	var models []ScoreModel
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Find(&models).Error
	if err != nil {
		return nil, err
	}

	scores := make([]score.Score, len(models))
	for i, model := range models {
		scores[i] = score.Score{
			MovieID: model.MovieID,
			UserID:  model.UserID,
			Value:   model.Value,
		}
	}
	return scores, nil
}

// SaveWithAggregate upserts the score row and writes the movie's new
// aggregate in the same transaction, so the aggregate never reflects a
// score that was not stored.
func (r *ScoreRepository) SaveWithAggregate(ctx context.Context, s score.Score, m movie.Movie) error {
	const upsert = `
INSERT INTO scores (movie_id, user_id, value)
VALUES (?, ?, ?)
ON CONFLICT (movie_id, user_id) DO UPDATE SET
	value = EXCLUDED.value`

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(upsert, s.MovieID, s.UserID, s.Value).Error; err != nil {
			return err
		}

		result := tx.Model(&MovieModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
			"score": m.Score,
			"count": m.Count,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return movie.ErrNotFound
		}
		return nil
	})
}
