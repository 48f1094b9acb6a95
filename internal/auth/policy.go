package auth

import (
	"errors"

	"github.com/google/uuid"
)

// ErrForbidden is returned when an authenticated identity lacks the role
// required for an action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized is returned when an authenticated identity is outside the
// scope allowed for an action.
var ErrUnauthorized = errors.New("unauthorized")

// UserScope describes which users an identity may list: everything, or a
// single company.
type UserScope struct {
	All       bool
	CompanyID uuid.UUID // set when All is false
}

// CanCreateCompany allows only superusers to create companies.
func CanCreateCompany(id *Identity) error {
	if !id.IsSuperuser {
		return ErrForbidden
	}
	return nil
}

// ListUsersScope resolves the user-listing scope for an identity: superusers
// see every user, admins see their own company, everyone else is denied. An
// admin without a company has nothing to scope to and is denied as well.
func ListUsersScope(id *Identity) (UserScope, error) {
	if id.IsSuperuser {
		return UserScope{All: true}, nil
	}
	if id.IsAdmin && id.CompanyID != nil {
		return UserScope{CompanyID: *id.CompanyID}, nil
	}
	return UserScope{}, ErrUnauthorized
}

// CanCreateUser allows only admins to create users. The gate is is_admin
// alone: a superuser without the admin flag is denied. New users are always
// attached to the caller's company and never created as superusers.
func CanCreateUser(id *Identity) error {
	if !id.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// CanViewUserTasks allows an admin to list another user's tasks when the
// target belongs to the admin's own company.
func CanViewUserTasks(caller *Identity, targetCompanyID *uuid.UUID) error {
	if !caller.IsAdmin {
		return ErrUnauthorized
	}
	if caller.CompanyID == nil || targetCompanyID == nil {
		return ErrUnauthorized
	}
	if *caller.CompanyID != *targetCompanyID {
		return ErrUnauthorized
	}
	return nil
}
