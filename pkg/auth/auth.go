package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

const (
	XUserEmailHeader = "X-User-Email"
	XUserRoleHeader  = "X-User-Role"
)

// JWTKey is replaced from config at startup.
var JWTKey = []byte("bookstore-dev-key")

func SetKey(key string) {
	if key != "" {
		JWTKey = []byte(key)
	}
}

type Claims struct {
	Profile struct {
		UserUid string `json:"userUid"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

type UserInfo struct {
	UserUid string
	Email   string
	Role    string
}

func SetAuthContext(ctx context.Context, info UserInfo) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

func FromContext(ctx context.Context) (UserInfo, bool) {
	info, ok := ctx.Value(ctxKey{}).(UserInfo)
	return info, ok
}
