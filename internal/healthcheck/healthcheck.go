package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler reports process liveness.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}
