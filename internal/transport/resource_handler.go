package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"shop-admin/internal/apperr"
	"shop-admin/internal/middleware"
	"shop-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResourceHandler serves the uniform CRUD surface for one entity family.
// The handler bodies are shared; resources differ only by payload type,
// entity type, service, and names.
type ResourceHandler[P any, E any] struct {
	resource string // plural; route segment and range header label
	singular string // capitalized; success messages
	svc      service.Resource[P, E]
	logger   *zap.Logger
}

// NewResourceHandler creates a handler for one resource
func NewResourceHandler[P any, E any](resource, singular string, svc service.Resource[P, E], logger *zap.Logger) *ResourceHandler[P, E] {
	return &ResourceHandler[P, E]{
		resource: resource,
		singular: singular,
		svc:      svc,
		logger:   logger,
	}
}

// RegisterRoutes mounts the six operations under /<resource>
func (h *ResourceHandler[P, E]) RegisterRoutes(r chi.Router) {
	r.Route("/"+h.resource, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/bulk-delete", h.BulkDelete)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns all rows plus a Content-Range header with the item count
func (h *ResourceHandler[P, E]) List(w http.ResponseWriter, r *http.Request) {
	items, aerr := h.svc.List(r.Context())
	if aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	w.Header().Set("Content-Range", middleware.ContentRange(h.resource, len(items)))
	middleware.RespondWithData(w, items)
}

// Get returns a single row by id
func (h *ResourceHandler[P, E]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	item, aerr := h.svc.Get(r.Context(), id)
	if aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	middleware.RespondWithData(w, item)
}

// Create validates the payload as one fail-fast gate, then inserts
func (h *ResourceHandler[P, E]) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}

	if aerr := h.svc.Create(r.Context(), payload); aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	middleware.RespondWithData(w, fmt.Sprintf("%s created successfully", h.singular))
}

// Update validates the payload, then replaces the row's mutable fields
func (h *ResourceHandler[P, E]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	payload, ok := h.decode(w, r)
	if !ok {
		return
	}

	if aerr := h.svc.Update(r.Context(), id, payload); aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	middleware.RespondWithData(w, fmt.Sprintf("%s updated successfully", h.singular))
}

// Delete removes a single row by id
func (h *ResourceHandler[P, E]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	if aerr := h.svc.Delete(r.Context(), id); aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	middleware.RespondWithData(w, fmt.Sprintf("%s deleted successfully", h.singular))
}

// BulkDelete removes a set of rows in one statement and echoes the
// requested id list, not filtered to the ids actually found
func (h *ResourceHandler[P, E]) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		middleware.RespondWithError(w, apperr.Validation(apperr.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	if aerr := h.svc.DeleteMany(r.Context(), ids); aerr != nil {
		h.fail(w, r, aerr)
		return
	}

	middleware.RespondWithData(w, ids)
}

// decode reads and validates the payload. Every failing field is reported
// at once; a failure here means the store is never reached.
func (h *ResourceHandler[P, E]) decode(w http.ResponseWriter, r *http.Request) (P, bool) {
	var payload P
	if err := middleware.DecodeAndValidate(r, &payload); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			h.logger.Debug("Payload validation failed",
				zap.String("resource", h.resource),
				zap.Int("failed_fields", len(fields)),
			)
			middleware.RespondWithError(w, apperr.Validation(fields...))
			return payload, false
		}

		middleware.RespondWithError(w, apperr.Validation(apperr.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return payload, false
	}

	return payload, true
}

func (h *ResourceHandler[P, E]) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, apperr.Validation(apperr.FieldError{
			Field:   "id",
			Message: "Invalid ID",
		}))
		return 0, false
	}
	return id, true
}

// fail logs failures that carry an internal cause, then responds with the
// mapped status and stable message only.
func (h *ResourceHandler[P, E]) fail(w http.ResponseWriter, r *http.Request, aerr *apperr.Error) {
	if aerr.Cause != nil {
		h.logger.Error("Operation failed",
			zap.String("resource", h.resource),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(aerr.Cause),
		)
	}

	middleware.RespondWithError(w, aerr)
}
