package mapper

import (
	"datachat/internal/api/handler/response"
	"datachat/internal/api/models"
)

// TableMapper handles mapping between table models and DTOs
type TableMapper interface {
	ToUploadResponse(t *models.Table, previewRows int) response.UploadResponse
	ToVisualizationResponse(a models.Answer) response.VisualizationResponse
}

type TableMapperImpl struct{}

func NewTableMapper() TableMapper {
	return &TableMapperImpl{}
}

func (m *TableMapperImpl) ToUploadResponse(t *models.Table, previewRows int) response.UploadResponse {
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	return response.UploadResponse{
		Columns: columns,
		Sample:  t.Sample(previewRows),
	}
}

func (m *TableMapperImpl) ToVisualizationResponse(a models.Answer) response.VisualizationResponse {
	return response.VisualizationResponse{
		Visualization: a.Visualization,
		Description:   a.Description,
	}
}
