// Package api speaks the story service's REST/JSON protocol.
//
// It is a thin relay: every call issues exactly one HTTP request, decodes the
// response into the shapes the rest of the client consumes, and reports the
// outcome as an error the caller can classify with errors.Is / errors.As.
// The package performs no retries and no local state changes; keeping the
// in-memory collections in step with the server is the service layer's job.
package api
