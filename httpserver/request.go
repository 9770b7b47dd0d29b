package httpserver

import "dsmovie/movie"

type MovieRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
	Image string `json:"image" validate:"omitempty,url,max=500"`
}

func (r MovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title: r.Title,
		Image: r.Image,
	}
}

type ScoreRequest struct {
	MovieID int64   `json:"movieId" validate:"required,min=1"`
	Score   float64 `json:"score" validate:"gte=0,lte=5"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,notblank,max=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required,notblank"`
}
