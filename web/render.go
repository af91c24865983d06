package web

import (
	"embed"
	"html/template"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const placeholderPoster = "/static/not-found.svg"

var yearPattern = regexp.MustCompile(`\d{4}`)

// yearToken extracts a 4-digit year for display. The stored value can be
// contaminated by imports, so the view never trusts it as-is.
func yearToken(year int) string {
	if token := yearPattern.FindString(strconv.Itoa(year)); token != "" {
		return token
	}
	return "N/A"
}

// joinOrNA renders a token list the way the detail view shows it.
func joinOrNA(tokens []string) string {
	if len(tokens) == 0 {
		return "N/A"
	}
	return strings.Join(tokens, ", ")
}

// posterURL falls back to the placeholder for absent or blank posters.
func posterURL(poster *string) string {
	if poster == nil || strings.TrimSpace(*poster) == "" {
		return placeholderPoster
	}
	return *poster
}

// renderer implements echo.Renderer over the embedded templates.
type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"yearToken": yearToken,
		"joinOrNA":  joinOrNA,
		"posterURL": posterURL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &renderer{templates: t}, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
