package service

import (
	"context"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

const (
	DefaultDemoEmail       = "demo@example.com"
	DefaultDemoDisplayName = "Demo User"
)

// DemoIdentityResolver acts as a single fixed user, created on first use.
// It stands in for real authentication.
type DemoIdentityResolver struct {
	users       ports.UserService
	email       string
	displayName string
}

func NewDemoIdentityResolver(users ports.UserService, email, displayName string) *DemoIdentityResolver {
	if email == "" {
		email = DefaultDemoEmail
	}
	if displayName == "" {
		displayName = DefaultDemoDisplayName
	}
	return &DemoIdentityResolver{users: users, email: email, displayName: displayName}
}

func (r *DemoIdentityResolver) ResolveUserID(ctx context.Context) (string, error) {
	return r.users.EnsureUserExists(ctx, r.email, r.displayName)
}

var _ ports.IdentityResolver = (*DemoIdentityResolver)(nil)
