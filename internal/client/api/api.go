package api

import (
	"context"

	"hacksnooze/internal/client/models"
)

// StoryDraft is the user-entered part of a new story submission.
type StoryDraft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UserRecord is the server's representation of a user. The server names the
// own-stories field "stories"; the service layer maps it to User.OwnStories.
type UserRecord struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"createdAt"`
	Favorites []models.Story `json:"favorites"`
	Stories   []models.Story `json:"stories"`
}

// AuthResult is the outcome of a successful signup or login: the user record
// plus a freshly issued session token.
type AuthResult struct {
	User  UserRecord
	Token string
}

// Client is the surface the service layer programs against. *HTTPClient is
// the production implementation; tests substitute fakes.
type Client interface {
	ListStories(ctx context.Context) ([]models.Story, error)
	CreateStory(ctx context.Context, token string, draft StoryDraft) (models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) error
	Signup(ctx context.Context, username, password, name string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, token, username string) (*UserRecord, error)
	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
