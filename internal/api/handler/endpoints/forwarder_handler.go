package endpoints

import (
	"datachat"
	"datachat/internal/api/handler/request"
	"datachat/internal/api/handler/response"
	"datachat/internal/api/service"
	"datachat/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type forwarderHandler struct {
	forwarderService *service.ForwarderService
	logger           zerolog.Logger
}

// ForwarderHandler mounts POST /query, which hands the prompt to the model
// untouched and returns its raw reply.
func ForwarderHandler(router gin.IRouter, forwarderService *service.ForwarderService) {
	h := &forwarderHandler{
		forwarderService: forwarderService,
		logger:           datachat.Logger,
	}

	router.POST("/query", h.query)
}

func (h *forwarderHandler) query(c *gin.Context) {
	var req request.QueryRequest
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse query request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error(), Kind: string(service.KindValidation)})
		return
	}

	reply, err := h.forwarderService.Forward(c.Request.Context(), req.Prompt)
	if err != nil {
		h.logger.Error().Err(err).Str("kind", string(service.KindOf(err))).Msg("Failed to forward prompt")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ForwardResponse{Response: reply})
}
