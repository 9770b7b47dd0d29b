package score

import (
	"context"

	"dsmovie/movie"
	"dsmovie/user"
)

type Service interface {
	// SaveScore records or overwrites the caller's score for a movie and
	// returns the movie with its recomputed aggregate. The caller identity
	// is passed explicitly by the request boundary.
	SaveScore(ctx context.Context, username string, movieID int64, value float64) (movie.Movie, error)
}

type Repository interface {
	ListByMovie(ctx context.Context, movieID int64) ([]Score, error)
	// SaveWithAggregate persists the upserted score and the movie's new
	// aggregate fields in one transaction, so the score row is never
	// reflected by an aggregate without being durable itself.
	SaveWithAggregate(ctx context.Context, s Score, m movie.Movie) error
}

type Usecase struct {
	users  user.Service
	movies movie.Repository
	scores Repository
}

func NewUsecase(users user.Service, movies movie.Repository, scores Repository) *Usecase {
	return &Usecase{
		users:  users,
		movies: movies,
		scores: scores,
	}
}

// SaveScore upserts the caller's score for a movie, then recomputes the
// movie's mean and count over the full score list. Resubmitting the same
// pair replaces the previous value, so the aggregate is idempotent per
// (movie, user). Concurrent calls for the same movie by different users may
// race on the aggregate; last writer wins, which is acceptable for ratings.
func (uc *Usecase) SaveScore(ctx context.Context, username string, movieID int64, value float64) (movie.Movie, error) {
	upserted := Score{MovieID: movieID, Value: value}
	if err := upserted.Validate(); err != nil {
		return movie.Movie{}, err
	}

	u, err := uc.users.Authenticated(ctx, username)
	if err != nil {
		return movie.Movie{}, err
	}
	upserted.UserID = u.ID

	// The movie must exist before anything is written: a bad movie id must
	// never leave an orphan score behind.
	m, err := uc.movies.GetByID(ctx, movieID)
	if err != nil {
		return movie.Movie{}, err
	}

	scores, err := uc.scores.ListByMovie(ctx, movieID)
	if err != nil {
		return movie.Movie{}, err
	}

	replaced := false
	for i := range scores {
		if scores[i].Key() == upserted.Key() {
			scores[i].Value = value
			replaced = true
			break
		}
	}
	if !replaced {
		scores = append(scores, upserted)
	}

	var sum float64
	for _, s := range scores {
		sum += s.Value
	}
	m.Score = sum / float64(len(scores))
	m.Count = len(scores)

	if err := uc.scores.SaveWithAggregate(ctx, upserted, m); err != nil {
		return movie.Movie{}, err
	}
	return m, nil
}
