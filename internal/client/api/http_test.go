package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const storyJSON = `{"storyId":"s1","title":"T","author":"A","url":"https://example.com/x","username":"bob","createdAt":"2020-01-01"}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestListStories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/stories", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"stories":[` + storyJSON + `]}`))
	})

	stories, err := c.ListStories(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 1)
	require.Equal(t, "s1", stories[0].StoryID)
	require.Equal(t, "bob", stories[0].Username)

	host, err := stories[0].Hostname()
	require.NoError(t, err)
	require.Equal(t, "example.com", host)
}

func TestListStoriesRejectsRecordWithoutID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stories":[{"title":"no id","username":"bob"}]}`))
	})

	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestCreateStory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/stories", r.URL.Path)

		var body struct {
			Token string `json:"token"`
			Story struct {
				Title  string `json:"title"`
				Author string `json:"author"`
				URL    string `json:"url"`
			} `json:"story"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "tok1", body.Token)
		require.Equal(t, "T", body.Story.Title)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"story":` + storyJSON + `}`))
	})

	story, err := c.CreateStory(context.Background(), "tok1", StoryDraft{Title: "T", Author: "A", URL: "https://example.com/x"})
	require.NoError(t, err)
	require.Equal(t, "s1", story.StoryID)
}

func TestDeleteStorySendsTokenInQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/stories/s1", r.URL.Path)
		require.Equal(t, "tok1", r.URL.Query().Get("token"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteStory(context.Background(), "tok1", "s1"))
}

func TestSignup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signup", r.URL.Path)

		var body struct {
			User struct {
				Username string `json:"username"`
				Password string `json:"password"`
				Name     string `json:"name"`
			} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "sam", body.User.Username)
		require.Equal(t, "pw", body.User.Password)
		require.Equal(t, "Sam", body.User.Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user":{"username":"sam","name":"Sam","createdAt":"t","favorites":[],"stories":[]},"token":"tok1"}`))
	})

	res, err := c.Signup(context.Background(), "sam", "pw", "Sam")
	require.NoError(t, err)
	require.Equal(t, "tok1", res.Token)
	require.Equal(t, "sam", res.User.Username)
	require.Empty(t, res.User.Favorites)
	require.Empty(t, res.User.Stories)
}

func TestLoginMapsServerStoriesField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"user":{"username":"bob","name":"Bob","createdAt":"t","favorites":[` + storyJSON + `],"stories":[` + storyJSON + `]},"token":"tok2"}`))
	})

	res, err := c.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.Len(t, res.User.Favorites, 1)
	require.Len(t, res.User.Stories, 1)
	require.Equal(t, "s1", res.User.Stories[0].StoryID)
}

func TestAuthResponseWithoutTokenRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"username":"bob","name":"Bob","createdAt":"t","favorites":[],"stories":[]}}`))
	})

	_, err := c.Login(context.Background(), "bob", "pw")
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestCurrentUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/bob", r.URL.Path)
		require.Equal(t, "tok1", r.URL.Query().Get("token"))
		w.Write([]byte(`{"user":{"username":"bob","name":"Bob","createdAt":"t","favorites":[],"stories":[]}}`))
	})

	u, err := c.CurrentUser(context.Background(), "tok1", "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", u.Username)
}

func TestFavoriteEndpoints(t *testing.T) {
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.Equal(t, "/users/bob/favorites/s1", r.URL.Path)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "tok1", body.Token)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.AddFavorite(context.Background(), "tok1", "bob", "s1"))
	require.Equal(t, http.MethodPost, gotMethod)

	require.NoError(t, c.RemoveFavorite(context.Background(), "tok1", "bob", "s1"))
	require.Equal(t, http.MethodDelete, gotMethod)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tc := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
			w.Write([]byte(`{"error":{"message":"nope"}}`))
		})

		_, err := c.ListStories(context.Background())
		require.ErrorIs(t, err, tc.want, "status %d", tc.code)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		require.Equal(t, tc.code, se.StatusCode)
		require.Equal(t, "nope", se.Message)
	}
}

func TestServerErrorIsPlainStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListStories(context.Background())
	require.NotErrorIs(t, err, ErrUnauthorized)
	require.NotErrorIs(t, err, ErrNotFound)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestTransportFailureWrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUndecodableBodyWrapsErrBadResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrBadResponse)
}
