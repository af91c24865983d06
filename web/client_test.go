package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmoteca/errs"
	"filmoteca/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListMovies(t *testing.T) {
	t.Run("sends the paging params and decodes the page", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/movies", r.URL.Path)
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"movies":[{"id":"m1","title":"Dune","year":2021}],"total":42}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		page, err := client.ListMovies(context.Background(), web.State{Page: 2, Search: "dune"})

		require.NoError(t, err)
		assert.Equal(t, "limit=25&page=2&search=dune", gotQuery)
		assert.Equal(t, int64(42), page.Total)
		require.Len(t, page.Movies, 1)
		assert.Equal(t, "Dune", page.Movies[0].Title)
	})

	t.Run("omits the search param when blank", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("search"))
			_, _ = w.Write([]byte(`{"movies":[],"total":0}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		_, err := client.ListMovies(context.Background(), web.State{Page: 1})

		require.NoError(t, err)
	})
}

func TestClientGetMovie(t *testing.T) {
	t.Run("decodes the combined detail response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movies/m1", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"movie": {"id":"m1","title":"Dune","year":2021},
				"comments": [{"id":"c1","movieId":"m1","name":"Jane","text":"Great film","date":"2024-05-01T12:00:00Z"}]
			}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		detail, err := client.GetMovie(context.Background(), "m1")

		require.NoError(t, err)
		assert.Equal(t, "Dune", detail.Movie.Title)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "Jane", detail.Comments[0].Name)
	})

	t.Run("maps a 404 body to a not-found error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"movie not found"}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		_, err := client.GetMovie(context.Background(), "missing")

		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
		assert.Equal(t, "movie not found", errs.ErrorMessage(err))
	})
}

func TestClientCreateMovie(t *testing.T) {
	t.Run("posts the fields and returns the inserted id", func(t *testing.T) {
		var gotBody web.MovieFields
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/movies", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"insertedId":"new-id"}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		fields := web.MovieFields{Title: "Dune", Year: "2021", Genres: "Sci-Fi, Adventure"}
		id, err := client.CreateMovie(context.Background(), fields)

		require.NoError(t, err)
		assert.Equal(t, "new-id", id)
		assert.Equal(t, fields, gotBody)
	})

	t.Run("maps a 400 body to a validation error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"title is a required field"}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		_, err := client.CreateMovie(context.Background(), web.MovieFields{Year: "2021"})

		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Equal(t, "title is a required field", errs.ErrorMessage(err))
	})
}

func TestClientUpdateMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/movies/m1", r.URL.Path)
		_, _ = w.Write([]byte(`{"modifiedCount":1}`))
	}))
	defer server.Close()

	client := web.NewClient(server.URL)
	count, err := client.UpdateMovie(context.Background(), "m1", web.MovieFields{Title: "Dune", Year: "2021"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestClientComments(t *testing.T) {
	t.Run("posts a comment", func(t *testing.T) {
		var gotBody web.CommentFields
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/comments", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"insertedId":"c1"}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		fields := web.CommentFields{Name: "Jane", Text: "Great film", MovieID: "m1"}
		id, err := client.CreateComment(context.Background(), fields)

		require.NoError(t, err)
		assert.Equal(t, "c1", id)
		assert.Equal(t, fields, gotBody)
	})

	t.Run("deletes a comment and returns the count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/comments/c1", r.URL.Path)
			_, _ = w.Write([]byte(`{"deletedCount":1}`))
		}))
		defer server.Close()

		client := web.NewClient(server.URL)
		count, err := client.DeleteComment(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestClientAPIDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"connection refused"}`))
	}))
	defer server.Close()

	client := web.NewClient(server.URL)
	_, err := client.ListMovies(context.Background(), web.State{Page: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
