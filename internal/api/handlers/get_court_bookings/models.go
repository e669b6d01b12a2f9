package get_court_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
// date ограничивает выборку одним днем, includeInactive добавляет отмененные
func ToServiceRequest(courtID, userID int64, dateStr, includeInactiveStr string) (*models.GetCourtBookingsRequest, error) {
	req := &models.GetCourtBookingsRequest{
		UserID:  userID,
		CourtID: courtID,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		dayEnd := date.AddDate(0, 0, 1)
		req.StartDate = &date
		req.EndDate = &dayEnd
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q: %w", includeInactiveStr, err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
