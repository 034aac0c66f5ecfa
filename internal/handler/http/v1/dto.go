package v1

import (
	"time"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой; fields заполняется при ошибке валидации
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code,omitempty"`
	Fields []models.FieldViolation `json:"fields,omitempty"`
}

// SubmissionResponse DTO для ответа гражданину после подачи дела
// @Description DTO с номером отслеживания нового дела
type SubmissionResponse struct {
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SOSListResponse DTO для страницы SOS-запросов
// @Description DTO для страницы SOS-запросов
type SOSListResponse struct {
	Items    []*models.SOSRequest `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// TriageRequest DTO для сортировки SOS
// @Description urgencyOverride - ручная оценка срочности (необязательно)
type TriageRequest struct {
	UrgencyOverride *int64 `json:"urgencyOverride"`
}

// AssignRequest DTO для назначения бригады
// @Description DTO для назначения бригады
type AssignRequest struct {
	TeamID string `json:"teamId"`
}

// ReasonRequest DTO для отмены или закрытия дела
// @Description DTO с причиной отмены или закрытия
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// AllocationSubmitRequest DTO для подачи заявки на ресурсы
// @Description DTO для подачи заявки на ресурсы
type AllocationSubmitRequest struct {
	RequesterAuthorityID string `json:"requesterAuthorityId"`
	TargetAuthorityID    string `json:"targetAuthorityId"`
	ResourceType         string `json:"resourceType"`
	Quantity             int64  `json:"quantity"`
	Priority             string `json:"priority,omitempty"`
	Reason               string `json:"reason"`
	Notes                string `json:"notes,omitempty"`
}

// DecisionRequest DTO для одобрения или отклонения заявки
// @Description decidedBy обязателен; reason обязателен при отклонении
type DecisionRequest struct {
	DecidedBy string `json:"decidedBy"`
	Reason    string `json:"reason,omitempty"`
}

// StockChangeRequest DTO для пополнения или списания остатка
// @Description DTO для пополнения или списания остатка
type StockChangeRequest struct {
	Quantity int64 `json:"quantity"`
}

// StockResponse DTO остатка органа по одному ресурсу
// @Description DTO остатка органа по одному ресурсу
type StockResponse struct {
	AuthorityID  models.AuthorityID  `json:"authorityId"`
	ResourceType models.ResourceType `json:"resourceType"`
	Unit         string              `json:"unit"`
	Available    int64               `json:"available"`
	AllocatedOut int64               `json:"allocatedOut"`
	Physical     int64               `json:"physical"`
	UpdatedAt    *time.Time          `json:"updatedAt,omitempty"`
}
