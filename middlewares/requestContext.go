package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sabaerp/saba_backend/utils"
)

// RequestContextMiddleware attaches the calling user and a correlation id
// to the request context so model code can read them without touching gin.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		ctx = utils.SetCorrelationIdInContext(ctx, cid)

		if userId, err := strconv.Atoi(c.GetHeader("x-user-id")); err == nil && userId > 0 {
			ctx = utils.SetUserIdInContext(ctx, userId)
		}
		if username := c.GetHeader("x-username"); username != "" {
			ctx = utils.SetUsernameInContext(ctx, username)
		}

		c.Header("x-correlation-id", cid)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
