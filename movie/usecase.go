package movie

import "context"

type Service interface {
	FindAll(ctx context.Context, title string, page PageRequest) (Page, error)
	FindByID(ctx context.Context, id int64) (Movie, error)
	Insert(ctx context.Context, m Movie) (Movie, error)
	Update(ctx context.Context, id int64, m Movie) (Movie, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	// SearchByTitle performs a case-insensitive substring match over titles.
	// No matches yields an empty page, not an error.
	SearchByTitle(ctx context.Context, title string, page PageRequest) (Page, error)
	GetByID(ctx context.Context, id int64) (Movie, error)
	Create(ctx context.Context, m Movie) (Movie, error)
	Update(ctx context.Context, m Movie) (Movie, error)
	// DeleteByID removes the movie in a single statement, returning
	// ErrNotFound when nothing matched and ErrDependentRecords when
	// referential integrity blocks the delete. Keeping the existence check
	// inside the statement leaves no window between check and delete.
	DeleteByID(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) FindAll(ctx context.Context, title string, page PageRequest) (Page, error) {
	return uc.r.SearchByTitle(ctx, title, page.Normalize())
}

func (uc *Usecase) FindByID(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) Insert(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	// New movies start unrated.
	m.ID = 0
	m.Score = 0
	m.Count = 0
	return uc.r.Create(ctx, m)
}

func (uc *Usecase) Update(ctx context.Context, id int64, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}

	existing, err := uc.r.GetByID(ctx, id)
	if err != nil {
		return Movie{}, err
	}

	// Overwrite mutable fields only; the score aggregate survives.
	existing.Title = m.Title
	existing.Image = m.Image

	return uc.r.Update(ctx, existing)
}

func (uc *Usecase) Delete(ctx context.Context, id int64) error {
	return uc.r.DeleteByID(ctx, id)
}
