package cli

import (
	"context"
	"os"

	"hacksnooze/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, display name, and password, and attempts to
// create a new account. On success the new user becomes the current session
// and the credentials are remembered for the next run.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Your display name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	a.session.BeginAuth()
	u, err := a.auth.Signup(ctx, username, string(password), name)
	if err != nil {
		a.session.Fail()
		return err
	}

	a.session.Establish(u)
	a.printer.Successf("Account created. Welcome, %s!", u.Username)
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// user becomes the current session and the credentials are remembered.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	a.session.BeginAuth()
	u, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.session.Fail()
		return err
	}

	a.session.Establish(u)
	a.printer.Successf("Logged in as %s", u.Username)
	return nil
}

// Logout drops the stored credentials and ends the session. Purely local;
// the token is not revoked server-side.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session.Clear()
	a.printer.Printf("Logged out.")
	return nil
}
