package controllers

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

// pathID reads a positive id path parameter, writing a 400 when it is malformed
func pathID(ctx *gin.Context, key, name string) (int64, bool) {
	id, ok := helpers.ParseIDParam(ctx, key)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid "+name+" ID"))
		return 0, false
	}
	return id, true
}

// caller returns the authenticated principal, writing a 401 when there is none
func caller(ctx *gin.Context) (*appauth.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrUnauthenticated, "Authentication required"))
		return nil, false
	}
	return principal, true
}
