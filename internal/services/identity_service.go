// Package services – IdentityService
//
// This file implements the IdentityService, which resolves the person
// behind a chat channel id into a User row. It owns the role rules (the
// configured admin set outranks everything else) and the pending-executor
// reconciliation: executor records registered by handle or by direct
// channel id before the person ever contacted the system are bound to the
// identity the moment that contact happens.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// IdentityService implements the use-cases around user identity and roles.
type IdentityService struct {
	// DB is the database handle used for all identity operations.
	DB *gorm.DB

	// AdminIDs is the configured set of channel ids that own the admin
	// role. Membership here always wins over stored or hinted roles.
	AdminIDs []int64
}

// EnsureUser resolves the actor behind channelID, creating the identity row
// on first contact.
//
// Semantics:
//   - handle is stored without the "@" prefix; an empty incoming handle or
//     display name never clears a stored one (transports omit them freely).
//   - Members of the admin set always end up with the admin role.
//   - On create, the role is roleHint ("client", "executor" or empty); an
//     invalid non-empty hint yields ErrInvalidRole.
//   - On an existing user, a non-empty differing roleHint updates the role,
//     unless the actor is in the admin set.
//   - Every call reconciles pending executors: records whose pending handle
//     matches (case-insensitive) are bound and their pending handle cleared;
//     records whose direct channel id matches are bound with the direct id
//     kept as the delivery fallback.
func (s *IdentityService) EnsureUser(ctx context.Context, channelID int64, handle, displayName, roleHint string) (*domain.User, error) {
	tr := otel.Tracer("services/IdentityService")
	ctx, span := tr.Start(ctx, "EnsureUser",
		trace.WithAttributes(attribute.Int64("actor.channel_id", channelID)))
	defer span.End()

	handle = normalizeHandle(handle)
	displayName = strings.TrimSpace(displayName)
	admin := s.IsAdmin(channelID)

	u, err := repo.GetUserByChannel(ctx, s.DB, channelID)
	switch {
	case err == nil:
		newHandle, newName := u.Handle, u.DisplayName
		if handle != "" {
			newHandle = handle
		}
		if displayName != "" {
			newName = displayName
		}
		if newHandle != u.Handle || newName != u.DisplayName {
			if err := repo.UpdateUserProfile(ctx, s.DB, u.ID, newHandle, newName); err != nil {
				return nil, err
			}
			u.Handle, u.DisplayName = newHandle, newName
		}

		switch {
		case admin && u.Role != domain.RoleAdmin:
			if err := repo.UpdateUserRole(ctx, s.DB, u.ID, domain.RoleAdmin); err != nil {
				return nil, err
			}
			u.Role = domain.RoleAdmin
		case !admin && roleHint != "" && roleHint != u.Role:
			if roleHint != domain.RoleClient && roleHint != domain.RoleExecutor {
				return nil, ErrInvalidRole
			}
			if err := repo.UpdateUserRole(ctx, s.DB, u.ID, roleHint); err != nil {
				return nil, err
			}
			u.Role = roleHint
		}

	case errors.Is(err, repo.ErrNotFound):
		role := roleHint
		if admin {
			role = domain.RoleAdmin
		} else if role != "" && role != domain.RoleClient && role != domain.RoleExecutor {
			return nil, ErrInvalidRole
		}
		u, err = repo.CreateUser(ctx, s.DB, channelID, handle, displayName, role)
		if err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	boundH, err := repo.BindPendingByHandle(ctx, s.DB, strings.ToLower(u.Handle), u.ID)
	if err != nil {
		return nil, err
	}
	boundC, err := repo.BindPendingByChannel(ctx, s.DB, channelID, u.ID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("executors.bound", boundH+boundC))
	return u, nil
}

// SetRole records an explicit role selection for the actor behind channelID.
//
// Semantics:
//   - role must be "client", "executor" or "admin"; otherwise ErrInvalidRole.
//   - "admin" requires membership in the configured admin set; otherwise
//     ErrAdminRestricted.
//   - The user must already exist (EnsureUser runs on every contact before
//     any selection is possible); otherwise ErrUserNotFound.
func (s *IdentityService) SetRole(ctx context.Context, channelID int64, role string) (*domain.User, error) {
	tr := otel.Tracer("services/IdentityService")
	ctx, span := tr.Start(ctx, "SetRole", trace.WithAttributes(
		attribute.Int64("actor.channel_id", channelID),
		attribute.String("role", role),
	))
	defer span.End()

	switch role {
	case domain.RoleClient, domain.RoleExecutor:
	case domain.RoleAdmin:
		if !s.IsAdmin(channelID) {
			return nil, ErrAdminRestricted
		}
	default:
		return nil, ErrInvalidRole
	}

	u, err := repo.GetUserByChannel(ctx, s.DB, channelID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := repo.UpdateUserRole(ctx, s.DB, u.ID, role); err != nil {
		return nil, err
	}
	u.Role = role
	return u, nil
}

// IsAdmin reports whether channelID is in the configured admin set.
func (s *IdentityService) IsAdmin(channelID int64) bool {
	for _, id := range s.AdminIDs {
		if id == channelID {
			return true
		}
	}
	return false
}

// normalizeHandle strips the "@" prefix and surrounding space from a chat
// handle. The empty string stays empty.
func normalizeHandle(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "@")
}
