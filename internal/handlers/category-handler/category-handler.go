package category_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/00rosa/rena-plataform/internal/dtos/category_dto"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/handlers"
	category_service "github.com/00rosa/rena-plataform/internal/use-case/category-case"
	"github.com/00rosa/rena-plataform/state"
)

type CategoryHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  category_service.CategoryServiceContract
}

func NewCategoryHandler(state *state.AppState) *CategoryHandler {
	return &CategoryHandler{
		State:    state,
		Validate: validator.New(),
		Service:  category_service.NewCategoryService(state),
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req category_dto.CreateCategoryRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Create(r.Context(), req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.CreateResponse("category created successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	var req category_dto.UpdateCategoryRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("category updated successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return app_error.NotFound("category not found", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("category deleted successfully", deleted, handlers.RequestId(r)))
	return nil
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	resp, err := h.Service.GetById(r.Context(), id)
	if err != nil {
		return err
	}
	if resp == nil {
		return app_error.NotFound("category not found", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("category fetched successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	resp, err := h.Service.GetAll(r.Context())
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("categories fetched successfully", resp, handlers.RequestId(r)))
	return nil
}
