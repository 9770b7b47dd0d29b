package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"dsmovie/errs"
	"dsmovie/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterPublicMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/:id", s.handleGetMovie)
}

func (s *Server) RegisterPrivateMovieRoutes(g *echo.Group) {
	g.POST("/movies", s.handleCreateMovie)
	g.PUT("/movies/:id", s.handleUpdateMovie)
	g.DELETE("/movies/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Case-insensitive substring search over titles, paginated
// @Tags movies
// @Produce json
// @Param title query string false "Title filter (empty matches all)"
// @Param page query int false "Page index, default 0"
// @Param size query int false "Page size (1-100), default 20"
// @Param sort query string false "Sort key: id, title or score"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))

	page := movie.PageRequest{Sort: c.QueryParam("sort")}
	var err error
	if page.Page, err = intQueryParam(c, "page", 0); err != nil {
		return err
	}
	if page.Size, err = intQueryParam(c, "size", 0); err != nil {
		return err
	}

	result, err := s.MovieService.FindAll(c.Request().Context(), title, page)
	if err != nil {
		return err
	}

	return writePagedList(c, http.StatusOK, result.Items, result.Page, result.Size, result.Total)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Fetch one movie by id, including its aggregate rating
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Add a new movie; the rating aggregate starts at zero
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie data"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.MovieService.Insert(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusCreated, created)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Overwrite a movie's mutable fields; score and count are untouched
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie data"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.MovieService.Update(c.Request().Context(), id, req.ToMovie())
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete a movie without dependent scores
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := movieIDParam(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func movieIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Errorf(errs.EINVALID, "invalid movie id")
	}
	return id, nil
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.Errorf(errs.EINVALID, "invalid %s parameter", name)
	}
	return parsed, nil
}
