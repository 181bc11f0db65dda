package endpoints

import (
	"datachat/internal/api/handler/response"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the bundled client's index.html from staticDir, or a
// JSON message when no client is bundled.
func RootHandler(router gin.IRouter, staticDir string, message string) {
	index := filepath.Join(staticDir, "index.html")

	router.GET("/", func(c *gin.Context) {
		if info, err := os.Stat(index); err == nil && !info.IsDir() {
			c.File(index)
			return
		}
		c.JSON(http.StatusOK, response.Message{Message: message})
	})
}
