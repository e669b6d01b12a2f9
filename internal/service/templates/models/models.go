package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модели

// CreateTemplateRequest запрос на создание еженедельного шаблона
type CreateTemplateRequest struct {
	UserID    int64
	CourtID   int64
	Weekday   int
	StartTime types.TimeString
	EndTime   types.TimeString
	BasePrice float64
}

// ToDomainTemplate конвертирует request в domain модель
func (r *CreateTemplateRequest) ToDomainTemplate() *domain.SlotTemplate {
	return &domain.SlotTemplate{
		CourtID:   r.CourtID,
		Weekday:   r.Weekday,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		BasePrice: r.BasePrice,
		IsActive:  true,
	}
}

// DeactivateTemplateRequest запрос на деактивацию шаблона
type DeactivateTemplateRequest struct {
	UserID     int64
	CourtID    int64
	TemplateID int64
}

// Response модели

// TemplateResponse ответ с данными шаблона
type TemplateResponse struct {
	ID        int64   `json:"id"`
	CourtID   int64   `json:"courtId"`
	Weekday   int     `json:"weekday"` // 0=понедельник ... 6=воскресенье
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	BasePrice float64 `json:"basePrice"`
	IsActive  bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.SlotTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	return &TemplateResponse{
		ID:        t.ID,
		CourtID:   t.CourtID,
		Weekday:   t.Weekday,
		StartTime: t.StartTime.String(),
		EndTime:   t.EndTime.String(),
		BasePrice: t.BasePrice,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.SlotTemplate) *TemplateListResponse {
	resp := &TemplateListResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
	}

	for _, tpl := range templates {
		if tplResp := FromDomainTemplate(tpl); tplResp != nil {
			resp.Templates = append(resp.Templates, *tplResp)
		}
	}

	return resp
}
