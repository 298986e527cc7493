package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/domain"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (domain.User, error)
}

type Authenticator struct {
	resolver TokenResolver
}

func NewAuthenticator(resolver TokenResolver) *Authenticator {
	return &Authenticator{
		resolver: resolver,
	}
}

// VerifyJWT rejects the request with 401 unless it carries a token resolving
// to an active user. The user is stored in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx.GetHeader("Authorization"))

		user, err := a.resolver.ResolveToken(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				response.RenderErr(ctx, response.FromDomain("middleware.VerifyJWT", err))
				return
			}

			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Set(tokenContextKey, token)
		ctx.Next()
	}
}

// RequireStaff must run after VerifyJWT.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := UserFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.FromDomain("middleware.RequireStaff", domain.ErrTokenMissing))
			return
		}
		if !user.IsStaff {
			response.RenderErr(ctx, response.FromDomain("middleware.RequireStaff", domain.ErrStaffRequired))
			return
		}

		ctx.Next()
	}
}

func UserFromContext(ctx *gin.Context) (domain.User, bool) {
	value, ok := ctx.Get(userContextKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)

	return user, ok
}

func TokenFromContext(ctx *gin.Context) string {
	return ctx.GetString(tokenContextKey)
}

// bearerToken accepts both "Bearer <t>" and the "Token <t>" scheme.
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return ""
	}

	return strings.TrimSpace(token)
}
