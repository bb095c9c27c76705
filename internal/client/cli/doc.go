// Package cli provides the interactive hacksnooze command-line client.
//
// It wires configuration, the API client, the session store, and the story
// services into an interactive REPL. Typical flow: restore a remembered
// session if one exists, fetch and show the story list, then execute user
// commands.
//
// Key features:
//   - Signup / Login / Logout with a session that survives restarts
//   - Browse all stories, own stories, and favorites
//   - Submit and delete stories
//   - Mark and unmark favorites
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
