package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/adenisov/bookstore-service/pkg/auth"
	md "github.com/adenisov/bookstore-service/pkg/middleware"
)

func signToken(t *testing.T, userUid, email, role string, ttl time.Duration) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	claims.Profile.UserUid = userUid
	claims.Profile.Email = email
	claims.Profile.Role = role
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)
	return signed
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		info, ok := auth.FromContext(c.Request().Context())
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "no auth context")
		}
		return c.JSON(http.StatusOK, info)
	}, md.JwtAuthentication)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name:         "ok",
			header:       "Bearer " + signToken(t, "user-1", "a@b.c", "customer", time.Hour),
			expectedCode: http.StatusOK,
		},
		{
			name:         "err. no header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "err. not bearer",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "err. garbage token",
			header:       "Bearer not-a-token",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "err. expired",
			header:       "Bearer " + signToken(t, "user-1", "a@b.c", "customer", -time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)
			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
