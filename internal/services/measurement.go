package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
	"github.com/sbilibin2017/gw-hydroponics/internal/permissions"
)

//go:generate mockgen -source=measurement.go -destination=mock_measurement_test.go -package=services

// MeasurementReader reads measurements.
type MeasurementReader interface {
	List(ctx context.Context, ownerID uuid.UUID, f filters.MeasurementFilter) ([]models.MeasurementDB, error)
	GetByID(ctx context.Context, measurementID uuid.UUID) (*models.MeasurementDB, error)
}

// MeasurementWriter writes measurements.
type MeasurementWriter interface {
	Save(ctx context.Context, m *models.MeasurementDB) error
	Update(ctx context.Context, m *models.MeasurementDB) error
	Delete(ctx context.Context, measurementID uuid.UUID) error
}

// SystemFinder resolves a system by slug.
type SystemFinder interface {
	GetBySlug(ctx context.Context, slug string) (*models.SystemDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MeasurementService implements the measurement use cases and publishes a
// MeasurementEvent after each successful write.
type MeasurementService struct {
	reader      MeasurementReader
	writer      MeasurementWriter
	systems     SystemFinder
	authz       permissions.Authorizer[*models.MeasurementDB]
	systemAuthz permissions.Authorizer[*models.SystemDB]
	kafkaWriter KafkaWriter
}

func NewMeasurementService(
	reader MeasurementReader,
	writer MeasurementWriter,
	systems SystemFinder,
	authz permissions.Authorizer[*models.MeasurementDB],
	systemAuthz permissions.Authorizer[*models.SystemDB],
	kafkaWriter KafkaWriter,
) *MeasurementService {
	return &MeasurementService{
		reader:      reader,
		writer:      writer,
		systems:     systems,
		authz:       authz,
		systemAuthz: systemAuthz,
		kafkaWriter: kafkaWriter,
	}
}

// List returns measurements of the requester's systems matching f.
func (s *MeasurementService) List(ctx context.Context, requester uuid.UUID, f filters.MeasurementFilter) ([]models.MeasurementDB, error) {
	measurements, err := s.reader.List(ctx, requester, f)
	if err != nil {
		logger.Log.Errorw("failed to list measurements", "requester", requester, "error", err)
		return nil, err
	}
	return measurements, nil
}

// Create validates the request against the requester and stores the measurement.
func (s *MeasurementService) Create(ctx context.Context, requester uuid.UUID, req models.MeasurementRequest) (*models.MeasurementDB, error) {
	system, err := s.validate(ctx, requester, req)
	if err != nil {
		return nil, err
	}

	m := &models.MeasurementDB{MeasurementID: uuid.New()}
	apply(m, system, req)

	if err := s.writer.Save(ctx, m); err != nil {
		logger.Log.Errorw("failed to save measurement", "system_id", system.SystemID, "error", err)
		return nil, err
	}

	s.publish(ctx, models.OperationCreated, m)
	return m, nil
}

// Get returns a measurement of one of the requester's systems.
func (s *MeasurementService) Get(ctx context.Context, requester, measurementID uuid.UUID) (*models.MeasurementDB, error) {
	return s.getOwned(ctx, requester, measurementID)
}

// Update replaces every writable field. The timestamp is kept.
func (s *MeasurementService) Update(ctx context.Context, requester, measurementID uuid.UUID, req models.MeasurementRequest) (*models.MeasurementDB, error) {
	m, err := s.getOwned(ctx, requester, measurementID)
	if err != nil {
		return nil, err
	}

	system, err := s.validate(ctx, requester, req)
	if err != nil {
		return nil, err
	}
	apply(m, system, req)

	err = s.writer.Update(ctx, m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update measurement", "measurement_id", measurementID, "error", err)
		return nil, err
	}

	s.publish(ctx, models.OperationUpdated, m)
	return m, nil
}

func (s *MeasurementService) Delete(ctx context.Context, requester, measurementID uuid.UUID) error {
	m, err := s.getOwned(ctx, requester, measurementID)
	if err != nil {
		return err
	}

	err = s.writer.Delete(ctx, measurementID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete measurement", "measurement_id", measurementID, "error", err)
		return err
	}

	s.publish(ctx, models.OperationDeleted, m)
	return nil
}

func (s *MeasurementService) getOwned(ctx context.Context, requester, measurementID uuid.UUID) (*models.MeasurementDB, error) {
	m, err := s.reader.GetByID(ctx, measurementID)
	if err != nil {
		logger.Log.Errorw("failed to get measurement", "measurement_id", measurementID, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	if !s.authz.IsOwner(requester, m) {
		logger.Log.Warnw("measurement access denied", "measurement_id", measurementID, "requester", requester)
		return nil, ErrPermissionDenied
	}
	return m, nil
}

// validate checks the payload and resolves its system. The system must be
// owned by requester; every field problem is reported together.
func (s *MeasurementService) validate(ctx context.Context, requester uuid.UUID, req models.MeasurementRequest) (*models.SystemDB, error) {
	verr := &ValidationError{}

	var system *models.SystemDB
	switch {
	case req.System == nil || strings.TrimSpace(*req.System) == "":
		verr.Add("system", msgRequired)
	default:
		ref, ok := systemSlugFromRef(*req.System)
		if !ok {
			verr.Add("system", msgBadHyperlink)
			break
		}
		found, err := s.systems.GetBySlug(ctx, ref)
		if err != nil {
			logger.Log.Errorw("failed to resolve system", "system", ref, "error", err)
			return nil, err
		}
		switch {
		case found == nil:
			verr.Add("system", msgNoSuchSystem)
		case !s.systemAuthz.IsOwner(requester, found):
			verr.Add("system", msgNotOwnSystem)
		default:
			system = found
		}
	}

	checkNumber(verr, "temperature", req.Temperature)
	checkNumber(verr, "ph", req.PH)
	checkNumber(verr, "tds", req.TDS)

	if err := verr.orNil(); err != nil {
		logger.Log.Warnw("measurement rejected", "requester", requester, "fields", verr.Fields)
		return nil, err
	}
	return system, nil
}

// publish sends the event to Kafka. Failures are logged and never returned.
func (s *MeasurementService) publish(ctx context.Context, operation string, m *models.MeasurementDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "measurement_id", m.MeasurementID)
		return
	}

	event := models.MeasurementEvent{
		EventID:       uuid.NewString(),
		Operation:     operation,
		MeasurementID: m.MeasurementID.String(),
		SystemSlug:    m.SystemSlug,
		OwnerID:       m.SystemOwnerID.String(),
		Temperature:   m.Temperature,
		PH:            m.PH,
		TDS:           m.TDS,
		Timestamp:     m.Timestamp,
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal measurement event", "measurement_id", event.MeasurementID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.MeasurementID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish measurement event", "measurement_id", event.MeasurementID, "operation", operation, "error", err)
		return
	}
	logger.Log.Infow("Measurement event published", "measurement_id", event.MeasurementID, "operation", operation)
}

func apply(m *models.MeasurementDB, system *models.SystemDB, req models.MeasurementRequest) {
	m.SystemID = system.SystemID
	m.SystemSlug = system.Slug
	m.SystemOwnerID = system.OwnerID
	m.Temperature = req.Temperature.Value
	m.PH = req.PH.Value
	m.TDS = req.TDS.Value
	if req.Description != nil {
		m.Description = *req.Description
	}
}

func checkNumber(verr *ValidationError, field string, n models.Number) {
	switch {
	case !n.Present:
		verr.Add(field, msgRequired)
	case !n.Valid:
		verr.Add(field, msgInvalidNumber)
	}
}

// systemSlugFromRef accepts a system URL (".../hydroponic-systems/<slug>/")
// or a bare slug.
func systemSlugFromRef(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if !strings.Contains(ref, "/") {
		return ref, ref != ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] != "hydroponic-systems" || parts[len(parts)-1] == "" {
		return "", false
	}
	return parts[len(parts)-1], true
}
