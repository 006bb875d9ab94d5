package auth

import (
	"context"

	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
)

// Principal is the authenticated caller of a request
type Principal struct {
	UserID     int64
	Email      string
	Name       string
	Role       models.Role
	IsApproved bool
}

// NewPrincipal builds a Principal from a freshly loaded user record
func NewPrincipal(user *models.User) *Principal {
	return &Principal{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		IsApproved: user.IsApproved,
	}
}

// Policy describes who may call an operation.
// An empty Roles set admits every authenticated role.
type Policy struct {
	Roles           []models.Role
	RequireApproval bool
}

// Predefined policies used by the route table
var (
	Authenticated  = Policy{}
	Admin          = Policy{Roles: []models.Role{models.RoleAdmin}}
	Alumni         = Policy{Roles: []models.Role{models.RoleAlumni}}
	ApprovedAlumni = Policy{Roles: []models.Role{models.RoleAlumni}, RequireApproval: true}
	Student        = Policy{Roles: []models.Role{models.RoleStudent}}
	ApprovedAny    = Policy{RequireApproval: true}
)

// Allows reports whether role is admitted by the policy's role set
func (p Policy) Allows(role models.Role) bool {
	if len(p.Roles) == 0 {
		return true
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize checks principal against policy. Checks run in a fixed order:
// authentication, then role, then alumni approval.
func Authorize(principal *Principal, policy Policy) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}
	if !policy.Allows(principal.Role) {
		return apperrors.ErrRoleNotAllowed
	}
	if policy.RequireApproval && principal.Role.RequiresApproval() && !principal.IsApproved {
		return apperrors.ErrAccountPendingApproval
	}
	return nil
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying principal
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext returns the principal stored by WithPrincipal, if any
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*Principal)
	return principal, ok && principal != nil
}
