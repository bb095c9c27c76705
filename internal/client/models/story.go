// Package models defines the client-side view of the story service's data:
// stories, the story list, and the signed-in user.
package models

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrMalformedURL indicates a story URL that cannot be parsed as an
// absolute URL. Callers should use errors.Is to match it.
var ErrMalformedURL = errors.New("malformed story url")

// Story is a single submitted link record as returned by the API.
//
// A Story is never mutated after construction; updates replace the value.
// StoryID is server-assigned and unique within any collection it appears in.
type Story struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// Hostname returns the host component of the story's URL for display.
// It returns ErrMalformedURL (wrapped) if the URL is not a valid
// absolute URL.
func (s Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedURL, s.URL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	return u.Hostname(), nil
}
