package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/middleware"
)

// respondError serializes a service error using the AppError taxonomy. 5xx
// responses additionally log the underlying error, which is never sent to the
// client.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Status >= 500 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path))
	}
	c.JSON(appErr.Status, appErr)
}

// paginationParams reads limit/offset query params with sane defaults.
func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 20
	offset = 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
