package templates

import (
	"context"
	"errors"
	"fmt"

	templateRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/template"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates/models"
)

// Service сервис для работы с еженедельными шаблонами слотов
type Service struct {
	templateRepo TemplateRepository
	courtClient  CourtServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	templateRepo TemplateRepository,
	courtClient CourtServiceClient,
	logger Logger,
) *Service {
	return &Service{
		templateRepo: templateRepo,
		courtClient:  courtClient,
		logger:       logger,
	}
}

// GetCourtTemplates получает активные шаблоны корта за неделю
// Публичный метод - доступен всем
func (s *Service) GetCourtTemplates(ctx context.Context, courtID int64) (*models.TemplateListResponse, error) {
	if courtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if _, err := s.getCourt(ctx, courtID); err != nil {
		return nil, err
	}

	records, err := s.templateRepo.GetByCourt(ctx, courtID)
	if err != nil {
		s.logger.Error("[TemplatesService.GetCourtTemplates] Failed to list templates for court %d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to list templates: %v", ErrInternal, err)
	}

	return models.FromDomainTemplateList(records), nil
}

// Create создает новый еженедельный шаблон
// Доступно только владельцу корта. Пересечения с существующими шаблонами
// допустимы: при расчете доступности окна объединяются
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	tpl := req.ToDomainTemplate()
	if err := tpl.Validate(); err != nil {
		s.logger.Warn("[TemplatesService.Create] Validation failed for court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := s.getCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	if court.OwnerID != req.UserID {
		s.logger.Warn("[TemplatesService.Create] User %d is not the owner of court %d", req.UserID, req.CourtID)
		return nil, ErrAccessDenied
	}

	created, err := s.templateRepo.Create(ctx, tpl)
	if err != nil {
		s.logger.Error("[TemplatesService.Create] Failed to create template for court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to create template: %v", ErrInternal, err)
	}

	s.logger.Info("[TemplatesService.Create] Template %d created for court %d by user %d",
		created.ID, req.CourtID, req.UserID)

	return models.FromDomainTemplate(created), nil
}

// Deactivate помечает шаблон неактивным
// Доступно только владельцу корта. Существующие бронирования не затрагиваются
func (s *Service) Deactivate(ctx context.Context, req *models.DeactivateTemplateRequest) error {
	if req.CourtID <= 0 || req.TemplateID <= 0 {
		return fmt.Errorf("%w: courtID and templateID must be positive", ErrInvalidInput)
	}

	court, err := s.getCourt(ctx, req.CourtID)
	if err != nil {
		return err
	}

	if court.OwnerID != req.UserID {
		s.logger.Warn("[TemplatesService.Deactivate] User %d is not the owner of court %d", req.UserID, req.CourtID)
		return ErrAccessDenied
	}

	if err := s.templateRepo.Deactivate(ctx, req.TemplateID, req.CourtID); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		s.logger.Error("[TemplatesService.Deactivate] Failed to deactivate template %d: %v", req.TemplateID, err)
		return fmt.Errorf("%w: failed to deactivate template: %v", ErrInternal, err)
	}

	s.logger.Info("[TemplatesService.Deactivate] Template %d deactivated by user %d", req.TemplateID, req.UserID)

	return nil
}

func (s *Service) getCourt(ctx context.Context, courtID int64) (*courtservice.Court, error) {
	court, err := s.courtClient.GetCourt(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtservice.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("[TemplatesService] Failed to get court %d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	return court, nil
}
