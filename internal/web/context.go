package web

import "context"

// ctxKey is the private type for context keys set by this package.
type ctxKey int

const sessionIDKey ctxKey = iota

// withSessionID stores the live session ID in the request context.
func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// sessionIDFrom returns the session ID placed in the context by the
// session middleware, or "" when none is present.
func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
