package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"hacksnooze/internal/output"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListStories(ctx context.Context) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context, storyID string) error
	Favorite(ctx context.Context, storyID string) error
	Unfavorite(ctx context.Context, storyID string) error
	Favorites(ctx context.Context) error
	MyStories(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the hacksnooze CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, context cancellation, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - list           - fetch and show all stories
//	  - signup         - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in, additionally:
//	  - submit         - submit a new story (interactive prompts)
//	  - delete <id>    - delete one of your stories
//	  - fav <id>       - toggle the favorite marking on a story
//	  - unfav <id>     - clear the favorite marking on a story
//	  - favorites      - show your favorites
//	  - mine           - show stories you posted
//	  - logout         - log out
//
// Errors returned by command handlers are rendered here and the loop
// continues; a failed command never terminates the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, p *output.Printer) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprintf(p.Out(), "hs (%s)> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				p.Printf("Available commands: list, submit, delete <id>, fav <id>, unfav <id>, favorites, mine, logout, exit")
			} else {
				p.Printf("Available commands: list, signup, login, exit")
			}
		case "list":
			err = a.ListStories(ctx)
		case "signup":
			err = a.Signup(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "submit":
			err = a.Submit(ctx)
		case "delete":
			if len(args) == 0 {
				p.Printf("Usage: delete <story id>")
				continue
			}
			err = a.Delete(ctx, args[0])
		case "fav":
			if len(args) == 0 {
				p.Printf("Usage: fav <story id>")
				continue
			}
			err = a.Favorite(ctx, args[0])
		case "unfav":
			if len(args) == 0 {
				p.Printf("Usage: unfav <story id>")
				continue
			}
			err = a.Unfavorite(ctx, args[0])
		case "favorites":
			err = a.Favorites(ctx)
		case "mine":
			err = a.MyStories(ctx)
		case "exit", "quit":
			p.Printf("Bye!")
			return
		default:
			p.Printf("Unknown command: %s", cmd)
		}

		if err != nil {
			p.Errorf("%v", err)
		}
	}
}
