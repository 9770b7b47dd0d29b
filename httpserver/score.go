package httpserver

import (
	"net/http"

	"dsmovie/errs"
	"dsmovie/user"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterScoreRoutes(g *echo.Group) {
	g.PUT("/scores", s.handleSaveScore)
}

// handleSaveScore godoc
// @Summary Save Score
// @Description Record or overwrite the caller's score for a movie and return the updated aggregate
// @Tags scores
// @Accept json
// @Produce json
// @Param score body ScoreRequest true "Score data"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/scores [put]
func (s *Server) handleSaveScore(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Identity comes from the verified token, passed explicitly into the
	// service rather than read from ambient state.
	username, err := claimedUsername(c)
	if err != nil {
		return err
	}

	m, err := s.ScoreService.SaveScore(c.Request().Context(), username, req.MovieID, req.Score)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, m)
}

// claimedUsername extracts the username claim set by the JWT middleware.
func claimedUsername(c echo.Context) (string, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return "", user.ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", user.ErrUnauthenticated
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", user.ErrUnauthenticated
	}
	return username, nil
}
