package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"building-management/internal/domain/user"
	"building-management/internal/handler/httperr"
	"building-management/internal/pkg/errs"
	"building-management/internal/pkg/jwt"
	"building-management/internal/usecase"
	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	userQueries    queries.UserQueries
}

const (
	ctxEmailKey    = "auth_email"
	ctxIdentityKey = "auth_identity"
	ctxRoleKey     = "auth_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, userQueries queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		userQueries:    userQueries,
	}
}

// RequireAuth admits requests carrying a valid bearer token.
// No Authorization header is 401; anything else that fails is 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized access. No token provided.", nil)
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Invalid token.", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusForbidden, errs.Mark(err, errs.ErrForbidden), "Invalid token.", nil)
			return
		}

		c.Set(ctxEmailKey, identity.Email)
		c.Set(ctxIdentityKey, identity)
		c.Next()
	}
}

// RequireRole checks the caller's stored role, which changes with agreement
// decisions and so is never taken from the token. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetEmail(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized access. No token provided.", nil)
			return
		}

		role, err := m.userQueries.CurrentRole(c.Request.Context(), email)
		if err != nil {
			if errs.Is(err, errs.ErrDatabaseOperationFailed) {
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusForbidden, errs.Mark(err, errs.ErrForbidden), "Forbidden access.", nil)
			return
		}

		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Forbidden access.", nil)
			return
		}

		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func GetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func GetIdentity(c *gin.Context) (jwt.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return jwt.Identity{}, false
	}
	identity, ok := v.(jwt.Identity)
	return identity, ok
}

func GetRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
