package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-hydroponics/internal/database"
	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
	"github.com/sbilibin2017/gw-hydroponics/internal/permissions"
)

//go:generate mockgen -source=system.go -destination=mock_system_test.go -package=services

// SystemReader reads hydroponic systems.
type SystemReader interface {
	List(ctx context.Context, ownerID uuid.UUID, f filters.SystemFilter) ([]models.SystemDB, error)
	GetBySlug(ctx context.Context, slug string) (*models.SystemDB, error)
	ListSlugs(ctx context.Context, base string, exclude uuid.UUID) ([]string, error)
}

// SystemWriter writes hydroponic systems.
type SystemWriter interface {
	Save(ctx context.Context, system *models.SystemDB) error
	Update(ctx context.Context, system *models.SystemDB) error
	Delete(ctx context.Context, systemID uuid.UUID) error
}

// LatestMeasurementReader returns the newest measurements of a system.
type LatestMeasurementReader interface {
	ListLatestBySystem(ctx context.Context, systemID uuid.UUID, limit int) ([]models.MeasurementDB, error)
}

// SystemService implements the hydroponic system use cases. Every method takes
// the requester explicitly and never exposes another user's system.
type SystemService struct {
	reader       SystemReader
	writer       SystemWriter
	measurements LatestMeasurementReader
	authz        permissions.Authorizer[*models.SystemDB]
}

func NewSystemService(
	reader SystemReader,
	writer SystemWriter,
	measurements LatestMeasurementReader,
	authz permissions.Authorizer[*models.SystemDB],
) *SystemService {
	return &SystemService{
		reader:       reader,
		writer:       writer,
		measurements: measurements,
		authz:        authz,
	}
}

// List returns the requester's systems matching f.
func (s *SystemService) List(ctx context.Context, requester uuid.UUID, f filters.SystemFilter) ([]models.SystemDB, error) {
	systems, err := s.reader.List(ctx, requester, f)
	if err != nil {
		logger.Log.Errorw("failed to list systems", "requester", requester, "error", err)
		return nil, err
	}
	return systems, nil
}

// Create stores a new system owned by the requester with a fresh unique slug.
func (s *SystemService) Create(ctx context.Context, requester uuid.UUID, req models.SystemRequest) (*models.SystemDetail, error) {
	name, err := validateSystem(req)
	if err != nil {
		return nil, err
	}

	system := &models.SystemDB{
		SystemID: uuid.New(),
		OwnerID:  requester,
		Name:     name,
	}
	if req.Description != nil {
		system.Description = *req.Description
	}

	if err := s.saveWithSlug(ctx, system, slugBase(name), s.writer.Save); err != nil {
		logger.Log.Errorw("failed to create system", "requester", requester, "error", err)
		return nil, err
	}

	logger.Log.Infow("system created", "system_id", system.SystemID, "slug", system.Slug, "owner", requester)
	return s.detail(ctx, system.Slug)
}

// Get returns the system with its latest measurements.
func (s *SystemService) Get(ctx context.Context, requester uuid.UUID, slug string) (*models.SystemDetail, error) {
	system, err := s.getOwned(ctx, requester, slug)
	if err != nil {
		return nil, err
	}
	return s.withLatest(ctx, system)
}

// Update replaces name and, when given, description. The slug is regenerated
// only if the new name derives a different base slug.
func (s *SystemService) Update(ctx context.Context, requester uuid.UUID, slug string, req models.SystemRequest) (*models.SystemDetail, error) {
	system, err := s.getOwned(ctx, requester, slug)
	if err != nil {
		return nil, err
	}

	name, err := validateSystem(req)
	if err != nil {
		return nil, err
	}

	newBase := slugBase(name)
	renamed := newBase != slugBase(system.Name)

	system.Name = name
	if req.Description != nil {
		system.Description = *req.Description
	}

	if renamed {
		err = s.saveWithSlug(ctx, system, newBase, s.writer.Update)
	} else {
		err = s.writer.Update(ctx, system)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update system", "system_id", system.SystemID, "error", err)
		return nil, err
	}

	return s.detail(ctx, system.Slug)
}

// Delete removes the system and, through the store, all of its measurements.
func (s *SystemService) Delete(ctx context.Context, requester uuid.UUID, slug string) error {
	system, err := s.getOwned(ctx, requester, slug)
	if err != nil {
		return err
	}

	err = s.writer.Delete(ctx, system.SystemID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete system", "system_id", system.SystemID, "error", err)
		return err
	}

	logger.Log.Infow("system deleted", "system_id", system.SystemID, "slug", system.Slug)
	return nil
}

// getOwned loads a system by slug: missing is ErrNotFound, foreign is
// ErrPermissionDenied.
func (s *SystemService) getOwned(ctx context.Context, requester uuid.UUID, slug string) (*models.SystemDB, error) {
	system, err := s.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get system", "slug", slug, "error", err)
		return nil, err
	}
	if system == nil {
		return nil, ErrNotFound
	}
	if !s.authz.IsOwner(requester, system) {
		logger.Log.Warnw("system access denied", "slug", slug, "requester", requester)
		return nil, ErrPermissionDenied
	}
	return system, nil
}

// saveWithSlug picks the first free slug for base and persists with it.
// A concurrent writer claiming the same slug first surfaces as a name error,
// since the failed statement has already aborted the request transaction.
func (s *SystemService) saveWithSlug(ctx context.Context, system *models.SystemDB, base string, persist func(context.Context, *models.SystemDB) error) error {
	taken, err := s.reader.ListSlugs(ctx, base, system.SystemID)
	if err != nil {
		return err
	}
	system.Slug = uniqueSlug(base, taken)

	err = persist(ctx, system)
	if _, dup := database.UniqueViolation(err); dup {
		logger.Log.Warnw("slug taken concurrently", "slug", system.Slug)
		verr := &ValidationError{}
		verr.Add("name", msgSlugTaken)
		return verr
	}
	return err
}

func (s *SystemService) detail(ctx context.Context, slug string) (*models.SystemDetail, error) {
	system, err := s.reader.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, ErrNotFound
	}
	return s.withLatest(ctx, system)
}

func (s *SystemService) withLatest(ctx context.Context, system *models.SystemDB) (*models.SystemDetail, error) {
	latest, err := s.measurements.ListLatestBySystem(ctx, system.SystemID, models.LatestMeasurementsLimit)
	if err != nil {
		logger.Log.Errorw("failed to list latest measurements", "system_id", system.SystemID, "error", err)
		return nil, err
	}
	return &models.SystemDetail{System: *system, LatestMeasurements: latest}, nil
}

func validateSystem(req models.SystemRequest) (string, error) {
	verr := &ValidationError{}
	var name string
	switch {
	case req.Name == nil:
		verr.Add("name", msgRequired)
	case strings.TrimSpace(*req.Name) == "":
		verr.Add("name", msgBlank)
	default:
		name = strings.TrimSpace(*req.Name)
		if utf8.RuneCountInString(name) > models.SystemNameMaxLength {
			verr.Add("name", "Ensure this field has no more than 70 characters.")
		}
	}
	return name, verr.orNil()
}
