package httpserver

import (
	"context"
	"net/http"

	"filmoteca/comment"
	"filmoteca/errs"
	"filmoteca/movie"
	"filmoteca/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service

	CommentService comment.Service
}

func Default() *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()
	s.RegisterMovieRoutes()
	s.RegisterCommentRoutes()
	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS origins are matched per request so callers can set AllowOrigins
	// after construction.
	s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: s.allowOrigin,
	}))
}

func (s *Server) allowOrigin(origin string) (bool, error) {
	for _, allowed := range s.AllowOrigins {
		if allowed == "*" || allowed == origin {
			return true, nil
		}
	}
	return false, nil
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler maps application errors to appropriate HTTP
// status codes with an {"error": message} body.
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	// Wrong verbs and unknown routes arrive as Echo HTTPErrors
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		default:
			// Store failures land here: report a 500 carrying the
			// underlying message, never retry.
			code = http.StatusInternalServerError
			message = err.Error()
			sentry.WithContext(c).Error(err)
		}
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := writeError(c, code, message); err != nil {
			c.Logger().Error(err)
		}
	}
}
