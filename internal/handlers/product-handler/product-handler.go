package product_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/00rosa/rena-plataform/internal/dtos/product_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/handlers"
	product_service "github.com/00rosa/rena-plataform/internal/use-case/product-case"
	"github.com/00rosa/rena-plataform/state"
)

type ProductHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  product_service.ProductServiceContract
}

func NewProductHandler(state *state.AppState) *ProductHandler {
	validate := validator.New()
	_ = validate.RegisterValidation("condition", product_dto.ConditionValidator)
	_ = validate.RegisterValidation("product_status", product_dto.StatusValidator)
	return &ProductHandler{
		State:    state,
		Validate: validate,
		Service:  product_service.NewProductService(state),
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	ownerId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}

	var req product_dto.CreateProductRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Create(r.Context(), req, ownerId)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.CreateResponse("product created successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	requesterId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}

	var req product_dto.UpdateProductRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Update(r.Context(), id, req, requesterId)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("product updated successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	requesterId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}

	var req product_dto.ToggleStatusRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	toggled, err := h.Service.ToggleStatus(r.Context(), id, requesterId, entity.ProductStatus(req.Status))
	if err != nil {
		return err
	}
	if !toggled {
		return app_error.NotFound("product not found or not yours", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("product status updated successfully", toggled, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	requesterId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}

	deleted, err := h.Service.Delete(r.Context(), id, requesterId)
	if err != nil {
		return err
	}
	if !deleted {
		return app_error.NotFound("product not found or not yours", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("product deleted successfully", deleted, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	resp, err := h.Service.GetById(r.Context(), id)
	if err != nil {
		return err
	}
	if resp == nil {
		return app_error.NotFound("product not found", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("product fetched successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) ListAvailable(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	resp, err := h.Service.ListAvailable(r.Context())
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("products fetched successfully", resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	term := r.URL.Query().Get("q")
	if term == "" {
		return app_error.NewAppError(http.StatusBadRequest, "search term must not be empty", "q")
	}

	var categoryId *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return app_error.NewAppError(http.StatusBadRequest, "invalid identifier", "category_id")
		}
		categoryId = &parsed
	}

	resp, err := h.Service.Search(r.Context(), term, categoryId)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("products fetched successfully", resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) ListByUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	userId, idErr := handlers.PathUUID(r, "userId")
	if idErr != nil {
		return idErr
	}

	resp, err := h.Service.ListByUser(r.Context(), userId)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("products fetched successfully", resp, handlers.RequestId(r)))
	return nil
}

func (h *ProductHandler) CountByUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	userId, idErr := handlers.PathUUID(r, "userId")
	if idErr != nil {
		return idErr
	}

	count, err := h.Service.CountByUser(r.Context(), userId)
	if err != nil {
		return err
	}

	resp := product_dto.ProductCountResponse{UserID: userId, Count: count}
	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("product count fetched successfully", resp, handlers.RequestId(r)))
	return nil
}

// ListByStatus lists the authenticated caller's own products with the given
// status.
func (h *ProductHandler) ListByStatus(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	ownerId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}

	status := entity.ProductStatus(chi.URLParam(r, "status"))
	if !status.Valid() {
		return app_error.NewAppError(http.StatusBadRequest, "invalid product status", "status")
	}

	resp, err := h.Service.ListByStatus(r.Context(), ownerId, status)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("products fetched successfully", resp, handlers.RequestId(r)))
	return nil
}
