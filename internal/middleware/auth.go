package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/config"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
)

const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

// Roles recognised by the identity context. Token issuance lives in the
// auth service; this middleware only consumes bearer tokens.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleStaff   = "staff"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Authorization header must be a bearer token.")
			c.Abort()
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Token claims are not readable.")
			c.Abort()
			return
		}

		sub, ok1 := claims["sub"].(string)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Token is missing subject or role.")
			c.Abort()
			return
		}

		subjectID, err := uuid.Parse(sub)
		if err != nil {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Token subject is not a valid identifier.")
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, subjectID)
		c.Set(ContextRole, role)

		c.Next()
	}
}
