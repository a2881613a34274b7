package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/logx"
)

// JSONError writes {success:false, message, error} and logs server-side failures.
func JSONError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
		if status >= 500 {
			logx.Error().Err(err).Str("rid", RID(c)).Str("path", c.Request.URL.Path).Msg(message)
		}
	}
	c.AbortWithStatusJSON(status, body)
}
