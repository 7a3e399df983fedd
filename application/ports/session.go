package ports

import "context"

// ReadSession is an opaque transactional read handle threaded through a
// single orchestration call for read consistency. The engine never opens its
// own transaction; a caller that already holds one passes it here. Store
// adapters that understand the handle unwrap it, everything else ignores it.
type ReadSession any

type readSessionKey struct{}

// WithReadSession attaches a read session to the context.
func WithReadSession(ctx context.Context, session ReadSession) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, readSessionKey{}, session)
}

// ReadSessionFrom returns the read session attached to the context, if any.
func ReadSessionFrom(ctx context.Context) (ReadSession, bool) {
	session := ctx.Value(readSessionKey{})
	if session == nil {
		return nil, false
	}
	return session, true
}
