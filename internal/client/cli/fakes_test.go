package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/client/session"
	"hacksnooze/internal/logging"
	"hacksnooze/internal/output"
)

func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected extra prompt (%d answers given)", len(answers))
		}
		ans := answers[i]
		i++
		return ans, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	user    *models.User
	authErr error

	signupUser, signupPass, signupName string
	loginUser, loginPass               string

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Signup(_ context.Context, username, password, name string) (*models.User, error) {
	f.signupUser, f.signupPass, f.signupName = username, password, name
	return f.user, f.authErr
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.User, error) {
	f.loginUser, f.loginPass = username, password
	return f.user, f.authErr
}

func (f *fakeAuth) Restore(context.Context) *models.User { return f.user }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

type fakeStories struct {
	list *models.StoryList

	fetchErr error

	createRet   models.Story
	createErr   error
	createDraft api.StoryDraft

	removeErr error
	removedID string

	toggleRet bool
	toggleErr error
	toggledID string

	unfavID  string
	unfavErr error
}

func (f *fakeStories) FetchAll(context.Context) (*models.StoryList, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.list, nil
}

func (f *fakeStories) List() *models.StoryList { return f.list }

func (f *fakeStories) Create(_ context.Context, u *models.User, draft api.StoryDraft) (models.Story, error) {
	f.createDraft = draft
	if f.createErr != nil {
		return models.Story{}, f.createErr
	}
	u.PrependOwnStory(f.createRet)
	return f.createRet, nil
}

func (f *fakeStories) Remove(_ context.Context, _ *models.User, storyID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedID = storyID
	return nil
}

func (f *fakeStories) AddFavorite(_ context.Context, u *models.User, s models.Story) error {
	u.AddFavoriteLocal(s)
	return nil
}

func (f *fakeStories) RemoveFavorite(_ context.Context, u *models.User, s models.Story) error {
	if f.unfavErr != nil {
		return f.unfavErr
	}
	f.unfavID = s.StoryID
	u.RemoveFavoriteLocal(s.StoryID)
	return nil
}

func (f *fakeStories) ToggleFavorite(_ context.Context, _ *models.User, s models.Story) (bool, error) {
	f.toggledID = s.StoryID
	return f.toggleRet, f.toggleErr
}

// testApp builds an App with fakes and buffers for output assertions.
func testApp(auth *fakeAuth, stories *fakeStories) (*App, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	return &App{
		printer: output.NewPrinter(&out, &errw, false),
		log:     logging.NewZerologLogger(zerolog.Nop()),
		auth:    auth,
		stories: stories,
		session: session.New(),
		reader:  bufio.NewReader(strings.NewReader("")),
	}, &out, &errw
}
