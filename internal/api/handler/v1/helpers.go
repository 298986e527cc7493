package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/api/middleware"
	"github.com/seelv/dancebook/internal/domain"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s %q", name, raw))
	}

	return uint(id), nil
}

func getUserFromContext(ctx *gin.Context) (domain.User, *response.Err) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("authentication credentials were not provided"))
	}

	return user, nil
}
