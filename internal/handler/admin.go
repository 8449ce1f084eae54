package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// AdvanceDayRequest is the body of POST /api/v1/admin/advance-day
type AdvanceDayRequest struct {
	Days int `json:"days" validate:"min=1,max=365"`
}

// AdvanceDayResponse carries one report per simulated day
type AdvanceDayResponse struct {
	Message string              `json:"message"`
	Reports []*domain.DayReport `json:"reports"`
}

// AdvanceDayErrorResponse reports a failed advance together with the days saved before the failure
type AdvanceDayErrorResponse struct {
	Error   string              `json:"error"`
	Reports []*domain.DayReport `json:"reports"`
}

// HandleAdvanceDay advances the inventory by the requested number of days.
// An empty body advances a single day.
func HandleAdvanceDay(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := AdvanceDayRequest{Days: 1}
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Advance day"); err != nil {
				return
			}
		}

		logRequestFields(r, "Advance day", "days", req.Days)

		reports, err := svc.AdvanceDays(r.Context(), req.Days)
		if err != nil {
			status, message := logServiceError(r, ErrMsgAdvanceDayFailed, err)
			if len(reports) == 0 {
				respondError(w, status, message)
				return
			}
			respondJSON(w, status, AdvanceDayErrorResponse{Error: message, Reports: reports})
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgDaysAdvanced, "days", len(reports))
		respondJSON(w, http.StatusOK, AdvanceDayResponse{Message: MsgDayAdvancedSuccess, Reports: reports})
	}
}

// HandleGetReport returns the report of the most recent day advance
func HandleGetReport(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.LastReport(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetReportFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}
