package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/daywheel/daywheel/internal/rest"
	"github.com/daywheel/daywheel/internal/utils"
	"github.com/daywheel/daywheel/pkg/activity"
	"github.com/gorilla/mux"
)

type CategorySummaryDTO struct {
	ID          int     `json:"id"`
	UserID      int     `json:"userId"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
	Hours       int     `json:"hours"`
	Percentage  int     `json:"percentage"`
}

// TimelineSlotDTO is one hour of the resolved timeline. Activity is null for
// unoccupied hours; the array always has 24 entries.
type TimelineSlotDTO struct {
	Hour     int                   `json:"hour"`
	Activity *activity.ActivityDTO `json:"activity"`
}

type Handler struct {
	summaryService Service
	clock          utils.Clock
}

func NewHandler(summaryService Service, clock utils.Clock) *Handler {
	return &Handler{summaryService: summaryService, clock: clock}
}

// GetSummary godoc
// @Summary Per-category hour totals for one date
// @Description Aggregated hours and percentage of the day per category. Every category of the user is listed, including ones without activities.
// @Tags Summary
// @Produce json
// @Param userId path int true "User ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} CategorySummaryDTO
// @Router /api/users/{userId}/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userId, date, ok := h.requestParams(w, r)
	if !ok {
		return
	}

	summaries, err := h.summaryService.GetSummary(r.Context(), userId, date)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	summariesDTO := make([]CategorySummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		summariesDTO = append(summariesDTO, CategorySummaryDTO{
			ID:          s.ID,
			UserID:      s.UserID,
			Name:        s.Name,
			Color:       s.Color,
			Description: s.Description,
			Hours:       s.Hours,
			Percentage:  s.Percentage,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summariesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetTimeline godoc
// @Summary Hour-by-hour occupancy for one date
// @Description Resolves which activity owns each of the 24 hour slots; on overlap the earliest-created activity wins.
// @Tags Summary
// @Produce json
// @Param userId path int true "User ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} TimelineSlotDTO
// @Router /api/users/{userId}/timeline [get]
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userId, date, ok := h.requestParams(w, r)
	if !ok {
		return
	}

	occupancy, err := h.summaryService.GetTimeline(r.Context(), userId, date)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	slots := make([]TimelineSlotDTO, 0, HoursPerDay)
	for hour, occupant := range occupancy {
		slot := TimelineSlotDTO{Hour: hour}
		if occupant != nil {
			activityDTO := activity.ActivityToDTO(*occupant)
			slot.Activity = &activityDTO
		}
		slots = append(slots, slot)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slots); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) requestParams(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	userId, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return 0, "", false
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.clock.Now().Format("2006-01-02")
	}
	return userId, date, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, activity.ErrInvalidDate) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date",
			Details: "date must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
