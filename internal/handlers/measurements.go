package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
	"github.com/sbilibin2017/gw-hydroponics/internal/services"
)

//go:generate mockgen -source=measurements.go -destination=mock_measurements_test.go -package=handlers

// MeasurementReader serves the read side of measurements.
type MeasurementReader interface {
	List(ctx context.Context, requester uuid.UUID, f filters.MeasurementFilter) ([]models.MeasurementDB, error)
	Get(ctx context.Context, requester, measurementID uuid.UUID) (*models.MeasurementDB, error)
}

// MeasurementWriter serves the write side of measurements.
type MeasurementWriter interface {
	Create(ctx context.Context, requester uuid.UUID, req models.MeasurementRequest) (*models.MeasurementDB, error)
	Update(ctx context.Context, requester, measurementID uuid.UUID, req models.MeasurementRequest) (*models.MeasurementDB, error)
	Delete(ctx context.Context, requester, measurementID uuid.UUID) error
}

// NewListMeasurementsHandler returns an HTTP handler listing measurements of the caller's systems.
// @Summary List measurements
// @Tags measurements
// @Produce json
// @Security BearerAuth
// @Param system__name query string false "Case-insensitive substring of the system name"
// @Param timestamp_after query string false "Lower bound, RFC 3339 or YYYY-MM-DD"
// @Param timestamp_before query string false "Upper bound, RFC 3339 or YYYY-MM-DD"
// @Param temperature_min query number false "Minimum temperature"
// @Param temperature_max query number false "Maximum temperature"
// @Param ph_min query number false "Minimum pH"
// @Param ph_max query number false "Maximum pH"
// @Param tds_min query number false "Minimum TDS"
// @Param tds_max query number false "Maximum TDS"
// @Param ordering query string false "Comma list of timestamp, temperature, ph, tds; prefix - for descending"
// @Success 200 {array} handlers.MeasurementResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed filter value"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /measurements/ [get]
func NewListMeasurementsHandler(svc MeasurementReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		f, err := filters.ParseMeasurementFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		measurements, err := svc.List(r.Context(), claims.UserID, f)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newMeasurementResponses(baseURL(r), measurements))
	}
}

// NewCreateMeasurementHandler returns an HTTP handler recording a measurement.
// @Summary Create a measurement
// @Description The referenced system must belong to the caller
// @Tags measurements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param measurement body models.MeasurementRequest true "Measurement"
// @Success 201 {object} handlers.MeasurementResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /measurements/ [post]
func NewCreateMeasurementHandler(svc MeasurementWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req models.MeasurementRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp := newMeasurementResponse(baseURL(r), *m)
		w.Header().Set("Location", resp.URL)
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewGetMeasurementHandler returns an HTTP handler for a single measurement.
// @Summary Get a measurement
// @Tags measurements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Measurement id"
// @Success 200 {object} handlers.MeasurementResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /measurements/{id}/ [get]
func NewGetMeasurementHandler(svc MeasurementReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, services.ErrNotFound)
			return
		}

		m, err := svc.Get(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newMeasurementResponse(baseURL(r), *m))
	}
}

// NewUpdateMeasurementHandler returns an HTTP handler replacing a measurement.
// @Summary Update a measurement
// @Description Replaces system, readings and description. The timestamp is kept.
// @Tags measurements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Measurement id"
// @Param measurement body models.MeasurementRequest true "Measurement"
// @Success 200 {object} handlers.MeasurementResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /measurements/{id}/ [put]
func NewUpdateMeasurementHandler(svc MeasurementWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, services.ErrNotFound)
			return
		}

		var req models.MeasurementRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		m, err := svc.Update(r.Context(), claims.UserID, id, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newMeasurementResponse(baseURL(r), *m))
	}
}

// NewDeleteMeasurementHandler returns an HTTP handler deleting a measurement.
// @Summary Delete a measurement
// @Tags measurements
// @Security BearerAuth
// @Param id path string true "Measurement id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /measurements/{id}/ [delete]
func NewDeleteMeasurementHandler(svc MeasurementWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, services.ErrNotFound)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
