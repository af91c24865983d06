package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"filmoteca/comment"
	"filmoteca/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies)
	s.Router.GET("/movies/:id", s.handleGetMovie)
	s.Router.GET("/movies/:id/comments", s.handleListMovieComments)
	s.Router.POST("/movies", s.handleCreateMovie)
	s.Router.PUT("/movies/:id", s.handleUpdateMovie)
}

// MovieDetailResponse bundles a movie with its most recent comments.
type MovieDetailResponse struct {
	Movie    movie.Movie       `json:"movie"`
	Comments []comment.Comment `json:"comments"`
}

// CommentListResponse is the standalone comment listing body.
type CommentListResponse struct {
	Comments []comment.Comment `json:"comments"`
}

// handleListMovies godoc
// @Summary List movies
// @Description One page of movie summaries with the total match count
// @Tags movies
// @Produce json
// @Param search query string false "Case-insensitive substring across title/cast/directors/genres"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 25"
// @Success 200 {object} movie.Page
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	params := movie.ListParams{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Page:   intQueryParam(c, "page"),
		Limit:  intQueryParam(c, "limit"),
	}

	page, err := s.MovieService.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	// The only cached read path.
	c.Response().Header().Set("Cache-Control", "public, max-age=60")
	return c.JSON(http.StatusOK, page)
}

// handleGetMovie godoc
// @Summary Get movie detail
// @Description Full movie record plus its 10 most recent comments
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} MovieDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id := c.Param("id")

	m, err := s.MovieService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	comments, err := s.CommentService.ListForMovie(c.Request().Context(), id, comment.DetailLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MovieDetailResponse{Movie: m, Comments: comments})
}

// handleListMovieComments godoc
// @Summary List movie comments
// @Description Every comment on the movie, newest first
// @Tags comments
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} CommentListResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id}/comments [get]
func (s *Server) handleListMovieComments(c echo.Context) error {
	comments, err := s.CommentService.ListForMovie(c.Request().Context(), c.Param("id"), 0)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CommentListResponse{Comments: comments})
}

// handleCreateMovie godoc
// @Summary Create movie
// @Description Insert a new movie record
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie fields"
// @Success 200 {object} InsertedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	id, err := s.MovieService.Create(c.Request().Context(), req.ToDraft())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, InsertedResponse{InsertedID: id})
}

// handleUpdateMovie godoc
// @Summary Update movie
// @Description Replace every mutable field of the movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body MovieRequest true "Movie fields"
// @Success 200 {object} ModifiedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	count, err := s.MovieService.Update(c.Request().Context(), c.Param("id"), req.ToDraft())
	if err != nil {
		return err
	}

	// A zero count is success: the caller decides how to surface it.
	return c.JSON(http.StatusOK, ModifiedResponse{ModifiedCount: count})
}

// intQueryParam reads a numeric query parameter, falling back to 0 (and
// therefore the domain defaults) on absent or non-numeric input.
func intQueryParam(c echo.Context, name string) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
