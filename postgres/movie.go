package postgres

import (
	"context"
	"errors"

	"dsmovie/movie"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// score and count are the denormalized rating aggregate.
type MovieModel struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Title string  `gorm:"not null"`
	Score float64 `gorm:"not null;default:0"`
	Count int     `gorm:"not null;default:0"`
	Image string  `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// SearchByTitle performs a case-insensitive substring match over titles,
// returning the requested page plus the total match count.
func (r *MovieRepository) SearchByTitle(ctx context.Context, title string, page movie.PageRequest) (movie.Page, error) {
	query := r.db.WithContext(ctx).Model(&MovieModel{}).
		Where("UPPER(title) LIKE UPPER(?)", "%"+title+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return movie.Page{}, err
	}

	var models []MovieModel
	err := query.
		Order(orderClause(page.Sort)).
		Offset(page.Page * page.Size).
		Limit(page.Size).
		Find(&models).Error
	if err != nil {
		return movie.Page{}, err
	}

	items := make([]movie.Movie, len(models))
	for i, model := range models {
		items[i] = toDomainMovie(model)
	}
	return movie.Page{
		Items: items,
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// orderClause whitelists sortable columns; anything else falls back to id.
func orderClause(sort string) string {
	switch sort {
	case "title":
		return "title ASC, id ASC"
	case "score":
		return "score DESC, id ASC"
	default:
		return "id ASC"
	}
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := toModelMovie(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

// Update persists the mutable catalog fields only. The score aggregate is
// written exclusively by the score repository, so a stale in-memory copy
// can never clobber it here.
func (r *MovieRepository) Update(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	result := r.db.WithContext(ctx).Model(&MovieModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"title": m.Title,
		"image": m.Image,
	})
	if result.Error != nil {
		return movie.Movie{}, result.Error
	}
	if result.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return r.GetByID(ctx, m.ID)
}

// DeleteByID removes the movie in a single statement. A zero row count
// means the id never existed (or a concurrent delete won); a foreign key
// violation means dependent scores still reference it.
func (r *MovieRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MovieModel{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return movie.ErrDependentRecords
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return movie.ErrNotFound
	}
	return nil
}

func toDomainMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:    model.ID,
		Title: model.Title,
		Score: model.Score,
		Count: model.Count,
		Image: model.Image,
	}
}

func toModelMovie(m movie.Movie) MovieModel {
	return MovieModel{
		ID:    m.ID,
		Title: m.Title,
		Score: m.Score,
		Count: m.Count,
		Image: m.Image,
	}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
