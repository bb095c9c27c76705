package cli

import (
	"bufio"
	"context"
	"os"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/config"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/client/services"
	"hacksnooze/internal/client/session"
	"hacksnooze/internal/logging"
	"hacksnooze/internal/output"
)

// App owns the client's runtime state: the current session, the services,
// and the terminal I/O. There is no package-level state; one App means one
// session.
type App struct {
	printer *output.Printer
	log     logging.Logger
	auth    services.AuthService
	stories services.StoryService
	session *session.Session
	reader  *bufio.Reader
}

// NewApp wires the App from configuration: API client, session store,
// services, and terminal output.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	mode, err := output.ParseColorMode(cfg.ColorMode)
	if err != nil {
		return nil, err
	}
	printer := output.NewPrinter(os.Stdout, os.Stderr, output.ResolveColors(mode))

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	store := session.NewStore(sessionPath)

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	return &App{
		printer: printer,
		log:     log,
		auth:    services.NewAuthService(apiClient, store, log),
		stories: services.NewStoryService(apiClient, log),
		session: session.New(),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a remembered session if possible, shows the story list, and
// hands control to the REPL. It blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.startup(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.printer)
}

// startup mirrors a fresh page load: try the remembered user, then fetch
// stories. Either step may fail without aborting the program.
func (a *App) startup(ctx context.Context) {
	a.session.BeginAuth()
	if u := a.auth.Restore(ctx); u != nil {
		a.session.Establish(u)
		a.printer.Successf("Welcome back, %s!", u.Username)
	} else {
		a.session.Fail()
	}

	if err := a.ListStories(ctx); err != nil {
		a.printer.Errorf("Error loading stories: %v", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return u.Username
	}
	return a.session.State().String()
}

// currentUser returns the signed-in user, or ErrNoSession when anonymous.
func (a *App) currentUser() (*models.User, error) {
	if a.session.LoggedIn() {
		return a.session.User(), nil
	}
	return nil, services.ErrNoSession
}
