package ports

import "context"

type actorKey struct{}

// WithActor returns a context carrying the authenticated username. The auth
// middleware installs it; services read it when recording audit entries.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// ActorFrom returns the authenticated username, or empty on
// unauthenticated paths.
func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
