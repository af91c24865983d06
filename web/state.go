package web

import (
	"net/url"
	"strconv"
)

// MoviesPerPage is the fixed page size of the browse view.
const MoviesPerPage = 25

// State is the session-local UI state: the current page and search term.
// It is immutable; transitions return a fresh value and the state rides in
// the URL, so every render starts from an explicit State instead of
// ambient variables.
type State struct {
	Page   int
	Search string
}

// StateFromQuery rebuilds the state from a request URL. Absent or
// non-numeric pages fall back to 1.
func StateFromQuery(q url.Values) State {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return State{Page: page, Search: q.Get("search")}
}

// WithPage moves to another page keeping the search term.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// WithSearch starts a new search, which always resets to the first page.
func (s State) WithSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

// URL renders the state as a browse-view link.
func (s State) URL() string {
	q := url.Values{}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// Pagination is the view model of the prev/next controls, bounded by the
// total match count.
type Pagination struct {
	Page       int
	TotalPages int
	PrevURL    string
	NextURL    string
}

// Paginate computes the controls for the current state: prev is disabled
// on page 1 and next on the last page (an empty URL means disabled).
func (s State) Paginate(total int64) Pagination {
	totalPages := int((total + MoviesPerPage - 1) / MoviesPerPage)

	p := Pagination{Page: s.Page, TotalPages: totalPages}
	if s.Page > 1 {
		p.PrevURL = s.WithPage(s.Page - 1).URL()
	}
	if s.Page < totalPages {
		p.NextURL = s.WithPage(s.Page + 1).URL()
	}
	return p
}
