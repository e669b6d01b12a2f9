package templates

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

// TemplateRepository интерфейс репозитория шаблонов слотов
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.SlotTemplate) (*domain.SlotTemplate, error)
	GetByCourt(ctx context.Context, courtID int64) ([]*domain.SlotTemplate, error)
	Deactivate(ctx context.Context, id, courtID int64) error
}

// CourtServiceClient интерфейс клиента реестра кортов
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*courtservice.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
