package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest carries either the admin password or a previously issued
// token; presenting a valid token re-confirms the session.
type LoginRequest struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

// LoginResponse returns the session token for subsequent mutating calls.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// SessionClaims are the registered claims carried by an issued session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}
