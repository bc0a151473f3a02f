package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in API bearer tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Name      string `json:"name,omitempty"`
	TokenType string `json:"token_type"`
}
