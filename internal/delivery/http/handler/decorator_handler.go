package handler

import (
	"encoding/json"
	"net/http"

	"styledecor/internal/delivery/dto"
	"styledecor/internal/delivery/http/middleware"
	"styledecor/internal/usecase"
	"styledecor/pkg/response"
	"styledecor/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DecoratorHandler struct {
	decoratorUsecase usecase.DecoratorUsecase
	validator        *validator.CustomValidator
}

func NewDecoratorHandler(decoratorUsecase usecase.DecoratorUsecase, validator *validator.CustomValidator) *DecoratorHandler {
	return &DecoratorHandler{
		decoratorUsecase: decoratorUsecase,
		validator:        validator,
	}
}

// ListActiveDecorators serves the public team listing
func (h *DecoratorHandler) ListActiveDecorators(w http.ResponseWriter, r *http.Request) {
	decorators, err := h.decoratorUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list decorators")
		return
	}

	response.Success(w, http.StatusOK, "Decorators retrieved successfully", decorators)
}

func (h *DecoratorHandler) ListDecorators(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	decorators, err := h.decoratorUsecase.List(r.Context(), actor)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list decorators")
		}
		return
	}

	response.Success(w, http.StatusOK, "Decorators retrieved successfully", decorators)
}

func (h *DecoratorHandler) GetDecorator(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	decoratorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid decorator ID", nil)
		return
	}

	decorator, err := h.decoratorUsecase.Get(r.Context(), actor, decoratorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrUnknownDecorator:
			response.NotFound(w, "Decorator not found")
		default:
			response.InternalServerError(w, "Failed to get decorator")
		}
		return
	}

	response.Success(w, http.StatusOK, "Decorator retrieved successfully", decorator)
}

func (h *DecoratorHandler) CreateDecorator(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDecoratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	decorator, err := h.decoratorUsecase.Create(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create decorator")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Decorator created successfully", decorator)
}

func (h *DecoratorHandler) UpdateDecorator(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	decoratorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid decorator ID", nil)
		return
	}

	var req dto.UpdateDecoratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	decorator, err := h.decoratorUsecase.Update(r.Context(), actor, decoratorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrUnknownDecorator:
			response.NotFound(w, "Decorator not found")
		default:
			response.InternalServerError(w, "Failed to update decorator")
		}
		return
	}

	response.Success(w, http.StatusOK, "Decorator updated successfully", decorator)
}

func (h *DecoratorHandler) SetDecoratorActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	decoratorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid decorator ID", nil)
		return
	}

	var req dto.SetDecoratorActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err = h.decoratorUsecase.SetActive(r.Context(), actor, decoratorID, *req.Active)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrUnknownDecorator:
			response.NotFound(w, "Decorator not found")
		default:
			response.InternalServerError(w, "Failed to update decorator")
		}
		return
	}

	response.Success(w, http.StatusOK, "Decorator updated successfully", nil)
}
