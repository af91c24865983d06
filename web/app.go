package web

import (
	"context"
	"net/http"
	"strings"

	"filmoteca/comment"
	"filmoteca/errs"
	"filmoteca/movie"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// App is the server-rendered client: every view is one round trip to the
// API followed by a template render, so state never survives a request.
type App struct {
	Router *echo.Echo
	Addr   string
	API    *Client
}

func New(api *Client) (*App, error) {
	app := App{
		Router: echo.New(),
		Addr:   ":8081",
		API:    api,
	}

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	app.Router.Renderer = r

	app.Router.Use(middleware.Recover())
	app.Router.Use(middleware.RequestID())
	app.Router.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	app.Router.GET("/", app.handleBrowse)
	app.Router.GET("/movies/new", app.handleNewMovieForm)
	app.Router.GET("/movies/:id", app.handleDetail)
	app.Router.GET("/movies/:id/edit", app.handleEditMovieForm)
	app.Router.POST("/movies", app.handleCreateMovie)
	app.Router.POST("/movies/:id", app.handleUpdateMovie)
	app.Router.POST("/movies/:id/comments", app.handleAddComment)
	app.Router.POST("/comments/:id/delete", app.handleDeleteComment)

	return &app, nil
}

func (a *App) Start() error {
	return a.Router.Start(a.Addr)
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Router.Shutdown(ctx)
}

// browseView feeds the list template.
type browseView struct {
	State      State
	Movies     []movie.Summary
	Pagination Pagination
	Message    string
}

func (a *App) handleBrowse(c echo.Context) error {
	state := StateFromQuery(c.QueryParams())

	page, err := a.API.ListMovies(c.Request().Context(), state)
	if err != nil {
		return a.renderError(c, err)
	}

	view := browseView{
		State:      state,
		Movies:     page.Movies,
		Pagination: state.Paginate(page.Total),
	}
	if len(page.Movies) == 0 {
		view.Message = "No movies found."
	}
	return c.Render(http.StatusOK, "list.html", view)
}

// detailView feeds the detail template.
type detailView struct {
	Movie    movie.Movie
	Comments []comment.Comment
}

func (a *App) handleDetail(c echo.Context) error {
	detail, err := a.API.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.renderError(c, err)
	}

	return c.Render(http.StatusOK, "detail.html", detailView{
		Movie:    detail.Movie,
		Comments: detail.Comments,
	})
}

// formView feeds the shared create/edit template. A blank ID means create
// mode; edit mode is always populated from a fresh API fetch of the
// record, never from previously rendered text.
type formView struct {
	ID     string
	Fields MovieFields
	Error  string
}

func (a *App) handleNewMovieForm(c echo.Context) error {
	return c.Render(http.StatusOK, "form.html", formView{})
}

func (a *App) handleEditMovieForm(c echo.Context) error {
	detail, err := a.API.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.renderError(c, err)
	}

	return c.Render(http.StatusOK, "form.html", formView{
		ID:     detail.Movie.ID,
		Fields: fieldsFromMovie(detail.Movie),
	})
}

func (a *App) handleCreateMovie(c echo.Context) error {
	fields := movieFieldsFromForm(c)
	if msg := validateMovieFields(fields); msg != "" {
		return c.Render(http.StatusBadRequest, "form.html", formView{Fields: fields, Error: msg})
	}

	if _, err := a.API.CreateMovie(c.Request().Context(), fields); err != nil {
		return a.renderError(c, err)
	}

	// Reload the browse view from scratch.
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleUpdateMovie(c echo.Context) error {
	id := c.Param("id")
	fields := movieFieldsFromForm(c)
	if msg := validateMovieFields(fields); msg != "" {
		return c.Render(http.StatusBadRequest, "form.html", formView{ID: id, Fields: fields, Error: msg})
	}

	if _, err := a.API.UpdateMovie(c.Request().Context(), id, fields); err != nil {
		return a.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/movies/"+id)
}

func (a *App) handleAddComment(c echo.Context) error {
	movieID := c.Param("id")
	fields := CommentFields{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Text:    c.FormValue("text"),
		MovieID: movieID,
	}

	if _, err := a.API.CreateComment(c.Request().Context(), fields); err != nil {
		return a.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/movies/"+movieID)
}

func (a *App) handleDeleteComment(c echo.Context) error {
	if _, err := a.API.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		return a.renderError(c, err)
	}

	target := "/"
	if movieID := c.FormValue("movie_id"); movieID != "" {
		target = "/movies/" + movieID
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// errorView feeds the error template.
type errorView struct {
	Message string
}

func (a *App) renderError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch errs.ErrorCode(err) {
	case errs.ENOTFOUND:
		status = http.StatusNotFound
	case errs.EINVALID:
		status = http.StatusBadRequest
	}
	return c.Render(status, "error.html", errorView{Message: errs.ErrorMessage(err)})
}

func movieFieldsFromForm(c echo.Context) MovieFields {
	return MovieFields{
		Title:  c.FormValue("title"),
		Year:   c.FormValue("year"),
		Genres: c.FormValue("genres"),
		Cast:   c.FormValue("cast"),
		Poster: c.FormValue("poster"),
	}
}

// validateMovieFields applies the form-level rule: title and year must be
// non-empty before anything is sent to the API.
func validateMovieFields(f MovieFields) string {
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Year) == "" {
		return "Title and year are required."
	}
	return ""
}

// fieldsFromMovie pre-populates the edit form from the fetched record so
// the form shows exactly what the detail view shows.
func fieldsFromMovie(m movie.Movie) MovieFields {
	f := MovieFields{
		Title:  m.Title,
		Year:   yearToken(m.Year),
		Genres: strings.Join(m.Genres, ", "),
		Cast:   strings.Join(m.Cast, ", "),
	}
	if m.Poster != nil {
		f.Poster = *m.Poster
	}
	return f
}
