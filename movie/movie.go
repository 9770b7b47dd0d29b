package movie

import (
	"strings"

	"dsmovie/errs"
)

var (
	ErrTitleRequired = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "movie not found")

	// ErrDependentRecords signals a delete blocked by referential integrity,
	// e.g. scores still referencing the movie.
	ErrDependentRecords = errs.Errorf(errs.ECONFLICT, "movie has dependent records")
)

// Movie carries the denormalized rating aggregate: Score is the mean of all
// submitted scores and Count the number of scores behind it. Both are owned
// by the score package; catalog updates must leave them untouched.
type Movie struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
	Image string  `json:"image"`
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// PageRequest describes the page of results a caller wants.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps the request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

// Page is one page of movies plus paging metadata.
type Page struct {
	Items []Movie `json:"items"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int64   `json:"total"`
}
