package auth

import "github.com/google/uuid"

// Identity is the trusted representation of a caller, decoded from a verified
// bearer token and stored in the request context. Claims reflect the user's
// persisted state as of token issuance; they are never re-read from storage.
type Identity struct {
	UserID      uuid.UUID
	Username    string
	FirstName   string
	LastName    string
	IsAdmin     bool
	IsSuperuser bool
	CompanyID   *uuid.UUID // nil for users not attached to a company
}
