// Package services contains the application services of the hacksnooze
// client: authentication/session management and the story synchronization
// facade. Services are the only layer that mutates the in-memory
// collections, and they do so strictly after the corresponding API call
// succeeds.
package services

import (
	"context"
	"errors"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/client/session"
	"hacksnooze/internal/logging"
)

// ErrNoSession is returned by operations that require a signed-in user.
var ErrNoSession = errors.New("not logged in")

// AuthService defines authentication and session-persistence operations.
//
// Contract:
//   - Signup / Login: authenticate against the server, build the User, and
//     persist the token/username pair for later restore.
//   - Restore: rebuild a session from stored credentials; never fails: any
//     problem is logged and reported as "no session".
//   - Logout: clear stored credentials locally. No server call is made.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Restore(ctx context.Context) *models.User
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// buildUser maps a server user record plus token into a User. The server's
// "stories" field becomes OwnStories.
func buildUser(rec api.UserRecord, token string) *models.User {
	return &models.User{
		Username:   rec.Username,
		Name:       rec.Name,
		CreatedAt:  rec.CreatedAt,
		Token:      token,
		Favorites:  append([]models.Story(nil), rec.Favorites...),
		OwnStories: append([]models.Story(nil), rec.Stories...),
	}
}

// persist saves the credentials that let the session survive a restart.
// A write failure does not invalidate the in-memory session; it only means
// the user will have to log in again next time, so it is logged, not raised.
func (a *authService) persist(ctx context.Context, u *models.User) {
	err := a.store.Save(session.Credentials{Token: u.Token, Username: u.Username})
	if err != nil {
		a.log.Warn(ctx, "could not persist session credentials", "err", err)
	}
}

func (a *authService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	res, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	u := buildUser(res.User, res.Token)
	a.persist(ctx, u)
	return u, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	u := buildUser(res.User, res.Token)
	a.persist(ctx, u)
	return u, nil
}

// Restore rebuilds a session from stored credentials. It returns nil when no
// credentials exist, when they are no longer accepted by the server, or when
// the server cannot be reached; startup falls back to an anonymous session
// instead of crashing. This is the one model-layer operation with local
// error recovery.
func (a *authService) Restore(ctx context.Context) *models.User {
	creds, err := a.store.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoCredentials) {
			a.log.Warn(ctx, "could not read stored credentials", "err", err)
		}
		return nil
	}

	rec, err := a.client.CurrentUser(ctx, creds.Token, creds.Username)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "user", creds.Username, "err", err)
		return nil
	}
	return buildUser(*rec, creds.Token)
}

// Logout discards the stored credentials. The token itself is not revoked
// server-side; the service offers no invalidation endpoint.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear()
}
