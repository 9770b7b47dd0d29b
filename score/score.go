package score

import "dsmovie/errs"

const (
	MinValue = 0.0
	MaxValue = 5.0
)

var ErrValueOutOfRange = errs.Errorf(errs.EINVALID, "score: value must be between %g and %g", MinValue, MaxValue)

// Key is the composite identity of a score: at most one score exists per
// (movie, user) pair. Value equality makes it usable as a lookup key.
type Key struct {
	MovieID int64
	UserID  int64
}

// Score is one user's rating of one movie.
type Score struct {
	MovieID int64   `json:"movieId"`
	UserID  int64   `json:"userId"`
	Value   float64 `json:"value"`
}

func (s Score) Key() Key {
	return Key{MovieID: s.MovieID, UserID: s.UserID}
}

func (s Score) Validate() error {
	if s.Value < MinValue || s.Value > MaxValue {
		return ErrValueOutOfRange
	}
	return nil
}
