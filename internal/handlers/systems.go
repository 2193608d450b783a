package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

//go:generate mockgen -source=systems.go -destination=mock_systems_test.go -package=handlers

// SystemReader serves the read side of hydroponic systems.
type SystemReader interface {
	List(ctx context.Context, requester uuid.UUID, f filters.SystemFilter) ([]models.SystemDB, error)
	Get(ctx context.Context, requester uuid.UUID, slug string) (*models.SystemDetail, error)
}

// SystemWriter serves the write side of hydroponic systems.
type SystemWriter interface {
	Create(ctx context.Context, requester uuid.UUID, req models.SystemRequest) (*models.SystemDetail, error)
	Update(ctx context.Context, requester uuid.UUID, slug string, req models.SystemRequest) (*models.SystemDetail, error)
	Delete(ctx context.Context, requester uuid.UUID, slug string) error
}

// NewListSystemsHandler returns an HTTP handler listing the caller's systems.
// @Summary List hydroponic systems
// @Description Returns the caller's systems. Other users' systems are never listed.
// @Tags systems
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive substring of the name"
// @Param owner__username query string false "Exact owner username, case-insensitive"
// @Param slug query string false "Exact slug, case-insensitive"
// @Param ordering query string false "Comma list of name, owner, slug; prefix - for descending"
// @Success 200 {array} handlers.SystemResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /hydroponic-systems/ [get]
func NewListSystemsHandler(svc SystemReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		f, err := filters.ParseSystemFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		systems, err := svc.List(r.Context(), claims.UserID, f)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		base := baseURL(r)
		resp := make([]SystemResponse, 0, len(systems))
		for _, s := range systems {
			resp = append(resp, newSystemResponse(base, s))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateSystemHandler returns an HTTP handler creating a system owned by the caller.
// @Summary Create a hydroponic system
// @Description The owner is always the caller; any owner in the body is ignored. The slug is derived from the name.
// @Tags systems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param system body models.SystemRequest true "System"
// @Success 201 {object} handlers.SystemDetailResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /hydroponic-systems/ [post]
func NewCreateSystemHandler(svc SystemWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req models.SystemRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		detail, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp := newSystemDetailResponse(baseURL(r), detail)
		w.Header().Set("Location", resp.URL)
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewGetSystemHandler returns an HTTP handler for a single system.
// @Summary Get a hydroponic system
// @Description Returns the system with its ten most recent measurements
// @Tags systems
// @Produce json
// @Security BearerAuth
// @Param slug path string true "System slug"
// @Success 200 {object} handlers.SystemDetailResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /hydroponic-systems/{slug}/ [get]
func NewGetSystemHandler(svc SystemReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		detail, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSystemDetailResponse(baseURL(r), detail))
	}
}

// NewUpdateSystemHandler returns an HTTP handler replacing a system.
// @Summary Update a hydroponic system
// @Description Replaces name and description. The slug changes only when the new name derives a different one.
// @Tags systems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "System slug"
// @Param system body models.SystemRequest true "System"
// @Success 200 {object} handlers.SystemDetailResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /hydroponic-systems/{slug}/ [put]
func NewUpdateSystemHandler(svc SystemWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req models.SystemRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		detail, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "slug"), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSystemDetailResponse(baseURL(r), detail))
	}
}

// NewDeleteSystemHandler returns an HTTP handler deleting a system and its measurements.
// @Summary Delete a hydroponic system
// @Tags systems
// @Security BearerAuth
// @Param slug path string true "System slug"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /hydroponic-systems/{slug}/ [delete]
func NewDeleteSystemHandler(svc SystemWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "slug")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
