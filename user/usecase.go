package user

import (
	"context"
	"strings"

	"dsmovie/errs"
)

var (
	ErrNotFound = errs.Errorf(errs.ENOTFOUND, "user not found")

	// ErrUnauthenticated deliberately hides the cause: callers only need to
	// know authentication failed, not why.
	ErrUnauthenticated = errs.Errorf(errs.EUNAUTHORIZED, "invalid user")
)

type Service interface {
	Authenticated(ctx context.Context, username string) (User, error)
	LoadUserByUsername(ctx context.Context, username string) (User, error)
}

type Repository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	// SearchDetailsByUsername returns the login projection rows for a
	// username, one row per (user, role) pair.
	SearchDetailsByUsername(ctx context.Context, username string) ([]Detail, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// Authenticated resolves the caller identity supplied by the request
// boundary into a full user record. Every failure, whether a blank identity,
// a lookup error or a missing user, is normalized to ErrUnauthenticated.
func (uc *Usecase) Authenticated(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrUnauthenticated
	}

	u, err := uc.r.FindByUsername(ctx, username)
	if err != nil {
		return User{}, ErrUnauthenticated
	}
	return u, nil
}

// LoadUserByUsername builds a single user aggregate from the login
// projection. The first row supplies username and password hash; every row
// contributes one role to the set.
func (uc *Usecase) LoadUserByUsername(ctx context.Context, username string) (User, error) {
	rows, err := uc.r.SearchDetailsByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if len(rows) == 0 {
		return User{}, ErrNotFound
	}

	u := User{
		Username:     rows[0].Username,
		PasswordHash: rows[0].Password,
	}
	for _, row := range rows {
		u.AddRole(Role{ID: row.RoleID, Authority: row.Authority})
	}
	return u, nil
}
