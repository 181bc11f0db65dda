package endpoints

import (
	"datachat"
	"datachat/internal/api/handler/mapper"
	"datachat/internal/api/handler/middleware"
	"datachat/internal/api/handler/request"
	"datachat/internal/api/handler/response"
	"datachat/internal/api/service"
	"datachat/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type visualizerHandler struct {
	tableService *service.TableService
	queryService *service.QueryService
	tableMapper  mapper.TableMapper
	logger       zerolog.Logger
}

// VisualizerHandler mounts the CSV upload and the visualization query, both
// scoped to the caller's session.
func VisualizerHandler(router gin.IRouter, tableService *service.TableService, queryService *service.QueryService, sessionTTL time.Duration) {
	h := &visualizerHandler{
		tableService: tableService,
		queryService: queryService,
		tableMapper:  mapper.NewTableMapper(),
		logger:       datachat.Logger,
	}

	routes := router.Group("")
	routes.Use(middleware.SessionMiddleware(sessionTTL))
	{
		routes.POST("/upload-csv", h.uploadCSV)
		routes.POST("/query", h.query)
	}
}

func (h *visualizerHandler) uploadCSV(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	header, err := c.FormFile("file")
	if err != nil {
		h.logger.Error().Err(err).Str("session", sessionID).Msg("Missing upload file")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error(), Kind: string(service.KindValidation)})
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to open upload file")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: err.Error(), Kind: string(service.KindInternal)})
		return
	}
	defer file.Close()

	table, err := h.tableService.Ingest(c.Request.Context(), sessionID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error().Err(err).Str("kind", string(service.KindOf(err))).Str("session", sessionID).Msg("Failed to ingest CSV")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.tableMapper.ToUploadResponse(table, service.PreviewRows))
}

func (h *visualizerHandler) query(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req request.QueryRequest
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		h.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to parse query request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error(), Kind: string(service.KindValidation)})
		return
	}

	answer, err := h.queryService.Respond(c.Request.Context(), sessionID, req.Prompt)
	if err != nil {
		h.logger.Error().Err(err).Str("kind", string(service.KindOf(err))).Str("session", sessionID).Msg("Failed to answer query")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.tableMapper.ToVisualizationResponse(answer))
}
