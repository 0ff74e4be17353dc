package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/campus-auction/goapi/base/ctx"
)

// JwtCustomClaims are custom claims extending default ones
type JwtCustomClaims struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// AuthUsecase signs and parses login tokens
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, userId UserId, email Email) (string, error)
	// ParseToken returns the user id embedded in a valid token
	ParseToken(ctx ctx.Ctx, token string) (UserId, Email, error)
}
