package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/seelv/dancebook/internal/domain"
)

type resolverFunc func(ctx context.Context, token string) (domain.User, error)

func (f resolverFunc) ResolveToken(ctx context.Context, token string) (domain.User, error) {
	return f(ctx, token)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def", "abc.def"},
		{"bearer abc.def", "abc.def"},
		{"Token abc.def", "abc.def"},
		{"  Bearer   abc.def  ", "abc.def"},
		{"Basic dXNlcjpwYXNz", ""},
		{"abc.def", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, bearerToken(tt.header))
		})
	}
}

func newRouter(resolver TokenResolver, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{NewAuthenticator(resolver).VerifyJWT()}, handlers...)
	chain = append(chain, func(ctx *gin.Context) {
		user, _ := UserFromContext(ctx)
		ctx.JSON(http.StatusOK, gin.H{"email": user.Email, "token": TokenFromContext(ctx)})
	})
	r.GET("/", chain...)

	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestVerifyJWT(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, token string) (domain.User, error) {
		switch token {
		case "":
			return domain.User{}, domain.ErrTokenMissing
		case "good":
			return domain.User{ID: 1, Email: "alice@example.com"}, nil
		case "revoked":
			return domain.User{}, domain.ErrTokenRevoked
		default:
			return domain.User{}, errors.New("redis: connection refused")
		}
	})
	r := newRouter(resolver)

	rec := serve(r, "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"alice@example.com","token":"good"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer revoked").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, "Bearer boom").Code)
}

func TestRequireStaff(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, token string) (domain.User, error) {
		return domain.User{ID: 1, Email: token + "@example.com", IsStaff: token == "staff"}, nil
	})
	r := newRouter(resolver, RequireStaff())

	assert.Equal(t, http.StatusOK, serve(r, "Bearer staff").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "Bearer alice").Code)
}

func TestRequireStaff_WithoutUser(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireStaff(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
}
