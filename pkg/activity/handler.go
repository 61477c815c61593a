package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/daywheel/daywheel/internal/rest"
	"github.com/daywheel/daywheel/internal/utils"
	"github.com/daywheel/daywheel/pkg/category"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ActivityDTO struct {
	ID         int     `json:"id"`
	UserID     int     `json:"userId"`
	CategoryID int     `json:"categoryId"`
	Date       string  `json:"date"`
	StartHour  int     `json:"startHour"`
	EndHour    int     `json:"endHour"`
	Title      string  `json:"title"`
	Notes      *string `json:"notes,omitempty"`
	// Category is only present on responses that join the category.
	Category *category.CategoryDTO `json:"category,omitempty"`
}

type Handler struct {
	activityService Service
	clock           utils.Clock
}

func NewHandler(activityService Service, clock utils.Clock) *Handler {
	return &Handler{activityService: activityService, clock: clock}
}

// List godoc
// @Summary List activities of a user for one date
// @Tags Activity
// @Produce json
// @Param userId path int true "User ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} ActivityDTO
// @Router /api/users/{userId}/activities [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userId, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.clock.Now().Format("2006-01-02")
	}

	activities, err := h.activityService.List(r.Context(), userId, date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			writeBadRequest(w, "Invalid date", "date must be in YYYY-MM-DD format")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	activitiesDTO := make([]ActivityDTO, 0, len(activities))
	for _, activity := range activities {
		activitiesDTO = append(activitiesDTO, ActivityToDTO(activity))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(activitiesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Create godoc
// @Summary Create a new activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param activity body ActivityDTO true "Activity"
// @Success 201 {object} ActivityDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid interval or date"
// @Router /api/activities [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating new activity")

	var activityDTO ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&activityDTO); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}

	created, err := h.activityService.Create(r.Context(), DTOToActivity(activityDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) || errors.Is(err, ErrInvalidDate) {
			writeBadRequest(w, "Invalid activity data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ActivityToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	activityId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid activity id", http.StatusBadRequest)
		return
	}

	var activityDTO ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&activityDTO); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}
	activityDTO.ID = activityId

	updated, err := h.activityService.Update(r.Context(), DTOToActivity(activityDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) || errors.Is(err, ErrInvalidDate) {
			writeBadRequest(w, "Invalid activity data", err.Error())
			return
		}
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "Activity not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ActivityToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	activityId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid activity id", http.StatusBadRequest)
		return
	}

	if err := h.activityService.Delete(r.Context(), activityId); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "Activity not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeBadRequest(w http.ResponseWriter, message string, details string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func ActivityToDTO(activity Activity) ActivityDTO {
	dto := ActivityDTO{
		ID:         activity.ID,
		UserID:     activity.UserID,
		CategoryID: activity.CategoryID,
		Date:       activity.Date,
		StartHour:  activity.StartHour,
		EndHour:    activity.EndHour,
		Title:      activity.Title,
		Notes:      activity.Notes,
	}
	if activity.Category.ID != 0 {
		categoryDTO := category.CategoryToDTO(activity.Category)
		dto.Category = &categoryDTO
	}
	return dto
}

func DTOToActivity(activityDTO ActivityDTO) Activity {
	return Activity{
		ID:         activityDTO.ID,
		UserID:     activityDTO.UserID,
		CategoryID: activityDTO.CategoryID,
		Date:       activityDTO.Date,
		StartHour:  activityDTO.StartHour,
		EndHour:    activityDTO.EndHour,
		Title:      activityDTO.Title,
		Notes:      activityDTO.Notes,
	}
}
