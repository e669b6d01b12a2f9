package create_slot_template

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	Weekday   int     `json:"weekday"`   // 0=понедельник ... 6=воскресенье
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "22:00"
	BasePrice float64 `json:"basePrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTemplateRequest) ToServiceRequest(courtID, userID int64) (*models.CreateTemplateRequest, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateTemplateRequest{
		UserID:    userID,
		CourtID:   courtID,
		Weekday:   r.Weekday,
		StartTime: startTime,
		EndTime:   endTime,
		BasePrice: r.BasePrice,
	}, nil
}
