package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"filmoteca/comment"
	"filmoteca/errs"
	"filmoteca/movie"
)

// Client talks to the catalog API. It is the only way the web views reach
// the backend; responses come back in the exact wire shapes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// MovieDetail mirrors the combined detail-fetch response.
type MovieDetail struct {
	Movie    movie.Movie       `json:"movie"`
	Comments []comment.Comment `json:"comments"`
}

func (c *Client) ListMovies(ctx context.Context, state State) (movie.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(state.Page))
	q.Set("limit", strconv.Itoa(MoviesPerPage))
	if state.Search != "" {
		q.Set("search", state.Search)
	}

	var page movie.Page
	err := c.get(ctx, "/movies?"+q.Encode(), &page)
	return page, err
}

func (c *Client) GetMovie(ctx context.Context, id string) (MovieDetail, error) {
	var detail MovieDetail
	err := c.get(ctx, "/movies/"+url.PathEscape(id), &detail)
	return detail, err
}

func (c *Client) CreateMovie(ctx context.Context, fields MovieFields) (string, error) {
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	err := c.send(ctx, http.MethodPost, "/movies", fields, &resp)
	return resp.InsertedID, err
}

func (c *Client) UpdateMovie(ctx context.Context, id string, fields MovieFields) (int64, error) {
	var resp struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}
	err := c.send(ctx, http.MethodPut, "/movies/"+url.PathEscape(id), fields, &resp)
	return resp.ModifiedCount, err
}

func (c *Client) CreateComment(ctx context.Context, fields CommentFields) (string, error) {
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	err := c.send(ctx, http.MethodPost, "/comments", fields, &resp)
	return resp.InsertedID, err
}

func (c *Client) DeleteComment(ctx context.Context, id string) (int64, error) {
	var resp struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	err := c.send(ctx, http.MethodDelete, "/comments/"+url.PathEscape(id), nil, &resp)
	return resp.DeletedCount, err
}

// MovieFields is the create/update request body.
type MovieFields struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	Genres string `json:"genres"`
	Cast   string `json:"cast"`
	Poster string `json:"poster"`
}

// CommentFields is the comment creation request body.
type CommentFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Text    string `json:"text"`
	MovieID string `json:"movieId"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError turns an {"error": message} body back into an application
// error, preserving the status class.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return errs.Errorf(errs.ENOTFOUND, "%s", message)
	case http.StatusBadRequest:
		return errs.Errorf(errs.EINVALID, "%s", message)
	default:
		return fmt.Errorf("api error: status=%d message=%s", resp.StatusCode, message)
	}
}
