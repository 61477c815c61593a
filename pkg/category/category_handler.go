package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/daywheel/daywheel/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID          int     `json:"id"`
	UserID      int     `json:"userId"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}

type CategoryHandler struct {
	categoryService CategoryService
}

func NewCategoryHandler(categoryService CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService}
}

// GetAll godoc
// @Summary List categories of a user
// @Tags Category
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} CategoryDTO
// @Router /api/users/{userId}/categories [get]
func (handler *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userId, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categories, err := handler.categoryService.GetAll(r.Context(), userId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categoriesDTO := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoriesDTO = append(categoriesDTO, CategoryToDTO(category))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoriesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Create godoc
// @Summary Create a new category
// @Tags Category
// @Accept json
// @Produce json
// @Param category body CategoryDTO true "Category"
// @Success 201 {object} CategoryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/categories [post]
func (handler *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new category")
	w.Header().Set("Content-Type", "application/json")

	categoryDTO, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	created, err := handler.categoryService.Create(r.Context(), DTOToCategory(categoryDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CategoryToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	categoryId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categoryDTO, ok := decodeCategory(w, r)
	if !ok {
		return
	}
	categoryDTO.ID = categoryId

	updated, err := handler.categoryService.Update(r.Context(), DTOToCategory(categoryDTO))
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CategoryToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Delete godoc
// @Summary Delete a category
// @Description Deletes a category unless it is still referenced by activities.
// @Tags Category
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400 {object} rest.ErrorResponse "Category is in use"
// @Failure 404 {string} string "Category not found"
// @Router /api/categories/{id} [delete]
func (handler *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.categoryService.Delete(r.Context(), categoryId); err != nil {
		if errors.Is(err, ErrCategoryInUse) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Category is in use and cannot be deleted",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeCategory(w http.ResponseWriter, r *http.Request) (CategoryDTO, bool) {
	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return CategoryDTO{}, false
	}
	if categoryDTO.Name == "" || categoryDTO.Color == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Name and color are required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return CategoryDTO{}, false
	}
	return categoryDTO, true
}

func CategoryToDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		UserID:      category.UserID,
		Name:        category.Name,
		Color:       category.Color,
		Description: category.Description,
	}
}

func DTOToCategory(categoryDTO CategoryDTO) Category {
	return Category{
		ID:          categoryDTO.ID,
		UserID:      categoryDTO.UserID,
		Name:        categoryDTO.Name,
		Color:       categoryDTO.Color,
		Description: categoryDTO.Description,
	}
}
