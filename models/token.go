package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every token the service issues.
//
// Session tokens carry only UserID. Share tokens additionally set Shared and
// an expiry (the "exp" registered claim).
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is the owner the token was issued for.
	UserID int64 `json:"userId"`

	// Shared marks a read-only share token.
	Shared bool `json:"shared,omitempty"`
}

// Token wraps a verified or freshly issued token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or URLs.
type Token struct {
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// IsShare reports whether the token is a share token.
func (t *Token) IsShare() bool {
	return t.Shared
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
