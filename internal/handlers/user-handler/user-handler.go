package user_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/00rosa/rena-plataform/internal/dtos/user_dto"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/handlers"
	user_service "github.com/00rosa/rena-plataform/internal/use-case/user-case"
	"github.com/00rosa/rena-plataform/state"
)

type UserHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Service  user_service.UserServiceContract
}

func NewUserHandler(state *state.AppState) *UserHandler {
	return &UserHandler{
		State:    state,
		Validate: validator.New(),
		Service:  user_service.NewUserService(state),
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req user_dto.RegisterRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Register(r.Context(), req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusCreated, handlers.CreateResponse("user registered successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req user_dto.LoginRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	ok, resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		return err
	}
	if !ok {
		return app_error.NewAppError(http.StatusUnauthorized, "invalid email or password", "credentials")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("login successful", *resp, handlers.RequestId(r)))
	return nil
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	resp, err := h.Service.GetById(r.Context(), id)
	if err != nil {
		return err
	}
	if resp == nil {
		return app_error.NotFound("user not found", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("user fetched successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	callerId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}
	if callerId != id {
		return app_error.Forbidden("you can only update your own profile", "id")
	}

	var req user_dto.UpdateProfileRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.UpdateProfile(r.Context(), id, req)
	if err != nil {
		return err
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("profile updated successfully", *resp, handlers.RequestId(r)))
	return nil
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	callerId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}
	if callerId != id {
		return app_error.Forbidden("you can only change your own password", "id")
	}

	var req user_dto.ChangePasswordRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	changed, err := h.Service.ChangePassword(r.Context(), id, req)
	if err != nil {
		return err
	}
	if !changed {
		return app_error.NewAppError(http.StatusBadRequest, "current password is incorrect", "current_password")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("password changed successfully", changed, handlers.RequestId(r)))
	return nil
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, idErr := handlers.PathUUID(r, "id")
	if idErr != nil {
		return idErr
	}

	callerId, authErr := handlers.AuthUserId(r)
	if authErr != nil {
		return authErr
	}
	if callerId != id {
		return app_error.Forbidden("you can only delete your own account", "id")
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return app_error.NotFound("user not found", "id")
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.CreateResponse("user deleted successfully", deleted, handlers.RequestId(r)))
	return nil
}
