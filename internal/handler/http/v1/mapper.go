package v1

import (
	"fmt"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// DTOToAllocationSubmission преобразует DTO заявки в доменную модель
func DTOToAllocationSubmission(dto AllocationSubmitRequest) models.AllocationSubmission {
	return models.AllocationSubmission{
		RequesterAuthorityID: dto.RequesterAuthorityID,
		TargetAuthorityID:    dto.TargetAuthorityID,
		ResourceType:         dto.ResourceType,
		Quantity:             dto.Quantity,
		Priority:             dto.Priority,
		Reason:               dto.Reason,
		Notes:                dto.Notes,
	}
}

// SOSToSubmissionResponse - ответ гражданину без персональных данных
func SOSToSubmissionResponse(req *models.SOSRequest) *SubmissionResponse {
	return &SubmissionResponse{
		TrackingID: req.TrackingID,
		Status:     string(req.Status),
		Message:    fmt.Sprintf("Your SOS request has been received. Tracking ID: %s", req.TrackingID),
		CreatedAt:  req.CreatedAt,
	}
}

// MissingPersonToSubmissionResponse - ответ заявителю о пропавшем
func MissingPersonToSubmissionResponse(c *models.MissingPersonCase) *SubmissionResponse {
	return &SubmissionResponse{
		TrackingID: c.TrackingID,
		Status:     string(c.Status),
		Message:    fmt.Sprintf("Your missing person report has been received. Tracking ID: %s", c.TrackingID),
		CreatedAt:  c.CreatedAt,
	}
}

// ModelToStockResponse преобразует запись журнала в DTO.
// Нулевая версия - ресурса у органа ещё не было, время обновления не отдаём.
func ModelToStockResponse(entry *models.StockEntry) *StockResponse {
	resp := &StockResponse{
		AuthorityID:  entry.AuthorityID,
		ResourceType: entry.ResourceType,
		Unit:         entry.ResourceType.Unit(),
		Available:    entry.Available,
		AllocatedOut: entry.AllocatedOut,
		Physical:     entry.Physical(),
	}
	if entry.Version > 0 {
		updated := entry.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// ModelsToStockResponses преобразует слайс записей в слайс DTO
func ModelsToStockResponses(entries []*models.StockEntry) []*StockResponse {
	responses := make([]*StockResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToStockResponse(entry)
	}
	return responses
}
