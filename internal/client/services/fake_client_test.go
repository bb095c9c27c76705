package services

import (
	"context"

	"github.com/rs/zerolog"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

// fakeClient implements api.Client for unit tests. Each call records its
// arguments; error fields make the corresponding call fail.
type fakeClient struct {
	stories    []models.Story
	listErr    error
	listCalled bool

	createRet   models.Story
	createErr   error
	createToken string
	createDraft api.StoryDraft

	deleteErr   error
	deleteToken string
	deleteID    string

	authRet *api.AuthResult
	authErr error

	currentRet      *api.UserRecord
	currentErr      error
	currentToken    string
	currentUsername string

	favErr     error
	favCalls   []string // "add:<id>" / "remove:<id>"
	favToken   string
	favUsernme string
}

func (f *fakeClient) ListStories(ctx context.Context) ([]models.Story, error) {
	f.listCalled = true
	return f.stories, f.listErr
}

func (f *fakeClient) CreateStory(ctx context.Context, token string, draft api.StoryDraft) (models.Story, error) {
	f.createToken, f.createDraft = token, draft
	return f.createRet, f.createErr
}

func (f *fakeClient) DeleteStory(ctx context.Context, token, storyID string) error {
	f.deleteToken, f.deleteID = token, storyID
	return f.deleteErr
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (*api.AuthResult, error) {
	return f.authRet, f.authErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.AuthResult, error) {
	return f.authRet, f.authErr
}

func (f *fakeClient) CurrentUser(ctx context.Context, token, username string) (*api.UserRecord, error) {
	f.currentToken, f.currentUsername = token, username
	return f.currentRet, f.currentErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	f.favToken, f.favUsernme = token, username
	if f.favErr != nil {
		return f.favErr
	}
	f.favCalls = append(f.favCalls, "add:"+storyID)
	return nil
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	f.favToken, f.favUsernme = token, username
	if f.favErr != nil {
		return f.favErr
	}
	f.favCalls = append(f.favCalls, "remove:"+storyID)
	return nil
}
