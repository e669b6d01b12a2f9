package deactivate_slot_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates/models"
)

const (
	msgInvalidCourtID    = "некорректный ID корта"
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgCourtNotFound     = "корт не найден"
	msgTemplateNotFound  = "шаблон не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courts/{courtId}/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id}/templates/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id}/templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /courts/{id}/templates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Деактивируем шаблон (сервис сам проверит права владельца)
	err = h.service.Deactivate(r.Context(), &models.DeactivateTemplateRequest{
		UserID:     userID,
		CourtID:    courtID,
		TemplateID: templateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrCourtNotFound):
			h.logger.Warn("DELETE /courts/{id}/templates/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("DELETE /courts/{id}/templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("DELETE /courts/{id}/templates/{id} - Access denied: court_id=%d, user_id=%d",
				courtID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("DELETE /courts/{id}/templates/{id} - Invalid input: court_id=%d, template_id=%d",
				courtID, templateID)
			handlers.RespondBadRequest(w, msgInvalidTemplateID)

		default:
			h.logger.Error("DELETE /courts/{id}/templates/{id} - Failed to deactivate template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id}/templates/{id} - Template deactivated successfully: template_id=%d, user_id=%d",
		templateID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
