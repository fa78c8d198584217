package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims identifying the dashboard owner
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenResponse is returned when a token is issued
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
