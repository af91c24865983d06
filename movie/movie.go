package movie

import (
	"strings"
	"unicode"

	"filmoteca/errs"
)

var (
	ErrTitleRequired = errs.Errorf(errs.EINVALID, "title is required")
	ErrYearRequired  = errs.Errorf(errs.EINVALID, "year is required")
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "movie not found")
)

// Movie is a full catalog record. Directors and Rating are populated by
// dataset imports only; the create and update operations never touch them.
type Movie struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genres    []string `json:"genres,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	Directors []string `json:"directors,omitempty"`
	Poster    *string  `json:"poster,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

// Summary is the list projection: just enough to render a card.
type Summary struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Poster *string `json:"poster,omitempty"`
}

// Page is one page of summaries plus the total count of matches across
// all pages.
type Page struct {
	Movies []Summary `json:"movies"`
	Total  int64     `json:"total"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// ListParams select a page of the catalog. An empty Search matches
// everything; otherwise it is a case-insensitive substring match across
// title, cast, directors and genres.
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

// Normalize applies the documented defaults: page and limit fall back to
// 1 and 25 when unset or out of range.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset is the number of records to skip for the selected page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Draft carries the raw, uncoerced fields of a create or update request.
type Draft struct {
	Title  string
	Year   string
	Genres string
	Cast   string
	Poster string
}

// Coerce turns a draft into a persistable movie. Title must be non-blank
// and Year must start with an integer; genres and cast are split on commas
// with surrounding whitespace trimmed, and a blank poster becomes absent.
func (d Draft) Coerce() (Movie, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Movie{}, ErrTitleRequired
	}

	year, ok := parseYear(d.Year)
	if !ok {
		return Movie{}, ErrYearRequired
	}

	m := Movie{
		Title:  title,
		Year:   year,
		Genres: SplitList(d.Genres),
		Cast:   SplitList(d.Cast),
	}
	if poster := strings.TrimSpace(d.Poster); poster != "" {
		m.Poster = &poster
	}
	return m, nil
}

// SplitList splits a comma-separated input into trimmed tokens. Blank
// input yields nil.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}

// parseYear reads a leading base-10 integer out of free-form text, so
// "2021" and "2021 (remastered)" both coerce to 2021.
func parseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)

	n := 0
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			break
		}
		n++
	}
	if n == 0 {
		return 0, false
	}

	year := 0
	for _, r := range raw[:n] {
		year = year*10 + int(r-'0')
	}
	return year, true
}
