package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"styledecor/internal/delivery/dto"
	"styledecor/internal/delivery/http/middleware"
	"styledecor/internal/domain/repository"
	"styledecor/internal/usecase"
	"styledecor/pkg/response"
	"styledecor/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// ListServices serves the public catalog: active services only, filterable by
// free-text query, category, type, and price sort
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.ServiceFilter{
		Query:      query.Get("q"),
		Category:   query.Get("category"),
		Type:       query.Get("type"),
		Sort:       query.Get("sort"),
		ActiveOnly: true,
	}

	limit, _ := strconv.Atoi(query.Get("limit"))
	offset := 0
	page, _ := strconv.Atoi(query.Get("page"))
	if limit <= 0 {
		limit = 20
	}
	if page > 1 {
		offset = (page - 1) * limit
	} else {
		page = 1
	}

	services, total, err := h.catalogUsecase.ListServices(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Services retrieved successfully", services, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	service, err := h.catalogUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.CreateService(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	serviceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.UpdateService(r.Context(), actor, serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	serviceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	err = h.catalogUsecase.DeleteService(r.Context(), actor, serviceID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}
