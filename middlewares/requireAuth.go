package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the HttpOnly cookie carrying the signed session token.
const SessionCookie = "dio_session"

func tokenFromRequest(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects unauthenticated requests and stores the session
// claims and user id in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := tokenFromRequest(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx.Set("user", claims)
		ctx.Set("userId", int(userID))
		ctx.Next()
	}
}

// OptionalAuth resolves the session when present and falls back to the
// anonymous user id 0, so booking and appointment creates work for
// signed-out visitors.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("userId", 0)
		if tokenString := tokenFromRequest(ctx); tokenString != "" {
			if claims, err := parseToken(tokenString); err == nil {
				if userID, ok := claims["user_id"].(float64); ok {
					ctx.Set("user", claims)
					ctx.Set("userId", int(userID))
				}
			}
		}
		ctx.Next()
	}
}
