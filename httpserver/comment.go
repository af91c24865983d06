package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCommentRoutes() {
	s.Router.POST("/comments", s.handleCreateComment)
	s.Router.DELETE("/comments/:id", s.handleDeleteComment)
}

// handleCreateComment godoc
// @Summary Create comment
// @Description Attach a comment to a movie; the date is stamped server-side
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CommentRequest true "Comment fields"
// @Success 200 {object} InsertedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments [post]
func (s *Server) handleCreateComment(c echo.Context) error {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	id, err := s.CommentService.Create(c.Request().Context(), req.ToComment())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, InsertedResponse{InsertedID: id})
}

// handleDeleteComment godoc
// @Summary Delete comment
// @Description Remove a comment; deleting an unknown id reports a zero count
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} DeletedResponse
// @Failure 500 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (s *Server) handleDeleteComment(c echo.Context) error {
	count, err := s.CommentService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeletedResponse{DeletedCount: count})
}
