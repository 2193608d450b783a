package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-hydroponics/internal/filters"
	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

const measurementSelect = `
	SELECT m.measurement_id, m.system_id, s.slug AS system_slug, s.owner_id AS system_owner_id,
	       m.temperature, m.ph, m.tds, m.description, m.timestamp
	FROM measurements m
	JOIN hydroponic_systems s ON s.system_id = m.system_id`

// MeasurementReadRepository handles measurement read operations
type MeasurementReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMeasurementReadRepository(db *sqlx.DB, txGetter TxGetter) *MeasurementReadRepository {
	return &MeasurementReadRepository{db: db, txGetter: txGetter}
}

// List returns measurements of systems owned by ownerID that match f.
func (r *MeasurementReadRepository) List(ctx context.Context, ownerID uuid.UUID, f filters.MeasurementFilter) ([]models.MeasurementDB, error) {
	w := &filters.Where{}
	w.Add(`s.owner_id = ?`, ownerID)
	f.Apply(w)

	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(measurementSelect + w.SQL() + f.OrderBy())

	measurements := []models.MeasurementDB{}
	err := sqlx.SelectContext(ctx, ex, &measurements, query, w.Args()...)

	logQuery(query, w.Args(), len(measurements), err)

	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return measurements, nil
}

// GetByID returns the measurement regardless of owner, or nil.
func (r *MeasurementReadRepository) GetByID(ctx context.Context, measurementID uuid.UUID) (*models.MeasurementDB, error) {
	query := measurementSelect + ` WHERE m.measurement_id = $1`

	var measurement models.MeasurementDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &measurement, query, measurementID)

	logQuery(query, []any{measurementID}, measurement.MeasurementID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get measurement: %w", err)
	}
	return &measurement, nil
}

// ListLatestBySystem returns up to limit measurements of the system, newest first.
func (r *MeasurementReadRepository) ListLatestBySystem(ctx context.Context, systemID uuid.UUID, limit int) ([]models.MeasurementDB, error) {
	query := measurementSelect + `
		WHERE m.system_id = $1
		ORDER BY m.timestamp DESC, m.measurement_id ASC
		LIMIT $2`

	measurements := []models.MeasurementDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &measurements, query, systemID, limit)

	logQuery(query, []any{systemID, limit}, len(measurements), err)

	if err != nil {
		return nil, fmt.Errorf("list latest measurements: %w", err)
	}
	return measurements, nil
}

// MeasurementWriteRepository handles measurement write operations
type MeasurementWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMeasurementWriteRepository(db *sqlx.DB, txGetter TxGetter) *MeasurementWriteRepository {
	return &MeasurementWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the measurement. The timestamp is assigned by the database.
func (r *MeasurementWriteRepository) Save(ctx context.Context, m *models.MeasurementDB) error {
	const query = `
		INSERT INTO measurements (measurement_id, system_id, temperature, ph, tds, description, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING timestamp`

	if m.MeasurementID == uuid.Nil {
		m.MeasurementID = uuid.New()
	}
	args := []any{m.MeasurementID, m.SystemID, m.Temperature, m.PH, m.TDS, m.Description}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&m.Timestamp)

	logQuery(query, args, m.MeasurementID, err)

	if err != nil {
		return fmt.Errorf("save measurement: %w", err)
	}
	return nil
}

// Update overwrites every writable field. The timestamp is left untouched.
func (r *MeasurementWriteRepository) Update(ctx context.Context, m *models.MeasurementDB) error {
	const query = `
		UPDATE measurements
		SET system_id = $2, temperature = $3, ph = $4, tds = $5, description = $6
		WHERE measurement_id = $1
		RETURNING timestamp`

	args := []any{m.MeasurementID, m.SystemID, m.Temperature, m.PH, m.TDS, m.Description}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&m.Timestamp)

	logQuery(query, args, m.MeasurementID, err)

	if err != nil {
		return fmt.Errorf("update measurement: %w", err)
	}
	return nil
}

func (r *MeasurementWriteRepository) Delete(ctx context.Context, measurementID uuid.UUID) error {
	const query = `DELETE FROM measurements WHERE measurement_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, measurementID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{measurementID}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
