package endpoints

import (
	"datachat/internal/api/handler/response"
	"datachat/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusFor(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status matching the error kind and the raw
// error text.
func writeError(c *gin.Context, err error) {
	kind := service.KindOf(err)
	c.JSON(statusFor(kind), response.APIError{Message: err.Error(), Kind: string(kind)})
}
