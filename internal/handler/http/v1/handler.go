package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
)

// AuthorityLister - справочник органов для HTTP-слоя
type AuthorityLister interface {
	All() []models.Authority
}

// Services - зависимости хэндлеров
type Services struct {
	SOS         service.SOSService
	Missing     service.MissingPersonService
	Lookup      service.CaseLookupService
	Allocations service.AllocationService
	Ledger      service.StockLedger
	Badges      service.BadgeService
	Authorities AuthorityLister
}

type Handler struct {
	sos         service.SOSService
	missing     service.MissingPersonService
	lookup      service.CaseLookupService
	allocations service.AllocationService
	ledger      service.StockLedger
	badges      service.BadgeService
	authorities AuthorityLister
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sos:         services.SOS,
		missing:     services.Missing,
		lookup:      services.Lookup,
		allocations: services.Allocations,
		ledger:      services.Ledger,
		badges:      services.Badges,
		authorities: services.Authorities,
		logger:      logger,
		cfg:         cfg,
	}
}

// writeError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: "validation_error", Fields: verr.Violations})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, models.ErrInvalidTransition):
		log.WithError(err).Warn("Invalid transition")
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "invalid_transition"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Concurrent modification")
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "conflict"})
	case errors.Is(err, models.ErrInsufficientStock):
		log.WithError(err).Warn("Insufficient stock")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "insufficient_stock"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON разбирает тело запроса; пустое тело допустимо, если allowEmpty.
// Значение не того типа возвращается как ошибка валидации конкретного поля.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any, allowEmpty bool) bool {
	if allowEmpty && c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			h.writeError(c, log, models.NewValidationError(typeErr.Field, "type", "must be "+jsonTypeName(typeErr.Type)))
			return false
		}
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "of a different type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	}
	return "of type " + t.String()
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func authorityParam(c *gin.Context) models.AuthorityID {
	return models.AuthorityID(strings.ToLower(strings.TrimSpace(c.Param("authorityId"))))
}

func resourceTypeParam(c *gin.Context) (models.ResourceType, error) {
	rt, err := models.ParseResourceType(c.Param("resourceType"))
	if err != nil {
		return "", models.NewValidationError("resourceType", "oneof", "must be one of food water medical shelter")
	}
	return rt, nil
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
