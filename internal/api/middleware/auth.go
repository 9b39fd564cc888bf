package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKeyUserID is where VerifyJWT leaves the authenticated staff user id.
const ContextKeyUserID = "user_id"

// Authenticator verifies bearer tokens minted by the external identity Hub.
// The API never performs the SSO handshake itself; a 401 response carries the
// Hub's login URL so the SPA can redirect.
type Authenticator struct {
	signingKey  []byte
	hubLoginURL string
}

func NewAuthenticator(signingKey, hubLoginURL string) *Authenticator {
	return &Authenticator{
		signingKey:  []byte(signingKey),
		hubLoginURL: hubLoginURL,
	}
}

type HubClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			a.abortUnauthorized(ctx, "missing bearer token")
			return
		}

		claims := &HubClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return a.signingKey, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			a.abortUnauthorized(ctx, "invalid bearer token")
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}

func (a *Authenticator) abortUnauthorized(ctx *gin.Context, msg string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":     msg,
		"login_url": a.hubLoginURL,
	})
}
