package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type SlotDTO struct {
	ID          string `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	DayName     string `json:"dayName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring bool   `json:"isRecurring"`
}

type SlotRequest struct {
	ID          string `json:"id,omitempty"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring *bool  `json:"isRecurring"`
}

type ReplaceScheduleRequest struct {
	Slots     []SlotRequest `json:"slots"`
	DeleteIDs []string      `json:"deleteIds"`
}

func slotDTO(slot models.AvailabilitySlot) SlotDTO {
	return SlotDTO{
		ID:          slot.ID,
		DayOfWeek:   slot.DayOfWeek,
		DayName:     services.DayName(slot.DayOfWeek),
		StartTime:   services.FormatClock(slot.StartMinute),
		EndTime:     services.FormatClock(slot.EndMinute),
		IsRecurring: slot.IsRecurring,
	}
}

func slotDTOs(slots []models.AvailabilitySlot) []SlotDTO {
	items := make([]SlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, slotDTO(slot))
	}
	return items
}

func slotInput(req SlotRequest) services.SlotInput {
	recurring := true
	if req.IsRecurring != nil {
		recurring = *req.IsRecurring
	}
	return services.SlotInput{
		ID:        req.ID,
		DayOfWeek: req.DayOfWeek,
		Start:     req.StartTime,
		End:       req.EndTime,
		Recurring: recurring,
	}
}

func (s *Server) ListAvailability(w http.ResponseWriter, r *http.Request) {
	slots, err := services.ListSlots(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]SlotDTO{"slots": slotDTOs(slots)})
}

func (s *Server) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	var req ReplaceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	upserts := make([]services.SlotInput, 0, len(req.Slots))
	for _, item := range req.Slots {
		upserts = append(upserts, slotInput(item))
	}
	slots, err := services.ReplaceWeeklySchedule(s.DB, CurrentUserID(r), upserts, req.DeleteIDs)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]SlotDTO{"slots": slotDTOs(slots)})
}

func (s *Server) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.ID = ""
	slot, err := services.AddOrUpdateSlot(s.DB, CurrentUserID(r), slotInput(req))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]SlotDTO{"slot": slotDTO(slot)})
}

func (s *Server) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.ID = chi.URLParam(r, "slotId")
	slot, err := services.AddOrUpdateSlot(s.DB, CurrentUserID(r), slotInput(req))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]SlotDTO{"slot": slotDTO(slot)})
}

func (s *Server) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteSlot(s.DB, CurrentUserID(r), chi.URLParam(r, "slotId")); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
