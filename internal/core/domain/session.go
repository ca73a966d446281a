package domain

import (
	"context"
	"time"
)

// Session is the request-scoped view of a signed-in user. Lookups that depend
// on the identity run under Context() and are abandoned once Close is called.
type Session struct {
	Identity  Identity
	Profile   *Profile
	TokenID   string
	ExpiresAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(parent context.Context, identity Identity, tokenID string, expiresAt time.Time) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		Identity:  identity,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *Session) Context() context.Context { return s.ctx }

// Close cancels any in-flight work started under the session context.
func (s *Session) Close() {
	if s != nil && s.cancel != nil {
		s.cancel()
	}
}

// View routes the session. A nil session routes to the login view.
func (s *Session) View() View {
	if s == nil {
		return Route(false, nil, nil)
	}
	return Route(false, &s.Identity, s.Profile)
}

// Role returns the parsed role, or RoleCitizen when no profile was loaded.
func (s *Session) Role() Role {
	if s == nil || s.Profile == nil {
		return RoleCitizen
	}
	return ParseRole(string(s.Profile.Role))
}
