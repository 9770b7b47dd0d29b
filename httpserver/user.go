package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", s.handleGetMe)
}

// handleGetMe godoc
// @Summary Current User
// @Description Resolve the authenticated caller and return their record with roles
// @Tags users
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/users/me [get]
func (s *Server) handleGetMe(c echo.Context) error {
	username, err := claimedUsername(c)
	if err != nil {
		return err
	}

	u, err := s.UserService.Authenticated(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, u)
}
