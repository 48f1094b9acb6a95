package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskdesk/taskdesk/internal/user"
)

// ErrInvalidToken is returned when a bearer token is malformed, carries a bad
// signature, or is missing required claims.
var ErrInvalidToken = errors.New("invalid or malformed token")

// Claims is the typed payload embedded in a bearer token. The token is
// self-contained: these fields are all a request needs for authorization, so
// no persistence lookup happens after verification.
type Claims struct {
	UserID      string  `json:"id"`
	Username    string  `json:"username"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	IsAdmin     bool    `json:"is_admin"`
	IsSuperuser bool    `json:"is_superuser"`
	CompanyID   *string `json:"company_id"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies bearer tokens with an HMAC secret fixed at
// process start.
//
// Tokens carry no expiry claim. Outstanding tokens stay valid until the
// signing secret rotates, which invalidates all of them at once. This is a
// known limitation, kept deliberately; revocability would need an explicit
// expiry plus a refresh flow.
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokens creates a Tokens from the configured secret and algorithm name.
// Only HMAC algorithms are accepted.
func NewTokens(secret, algorithm string) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &Tokens{secret: []byte(secret), method: method}, nil
}

// Issue builds Claims from the user's current persisted attributes and signs
// them into a bearer token.
func (t *Tokens) Issue(u *user.User) (string, error) {
	claims := Claims{
		UserID:      u.ID.String(),
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsAdmin:     u.IsAdmin,
		IsSuperuser: u.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: u.Username,
		},
	}
	if u.CompanyID != nil {
		cid := u.CompanyID.String()
		claims.CompanyID = &cid
	}

	token := jwt.NewWithClaims(t.method, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a bearer token, returning the embedded identity.
// It fails with ErrInvalidToken on a bad signature, a non-HMAC signing method,
// a malformed token, or missing required claims. The returned identity is
// trusted as of issuance time.
func (t *Tokens) Verify(raw string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Username == "" || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		UserID:      userID,
		Username:    claims.Username,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		IsAdmin:     claims.IsAdmin,
		IsSuperuser: claims.IsSuperuser,
	}

	if claims.CompanyID != nil {
		companyID, err := uuid.Parse(*claims.CompanyID)
		if err != nil {
			return nil, ErrInvalidToken
		}
		identity.CompanyID = &companyID
	}

	return identity, nil
}
