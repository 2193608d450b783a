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

const systemSelect = `
	SELECT s.system_id, s.owner_id, u.username AS owner_username,
	       s.name, s.description, s.slug, s.created_at, s.updated_at
	FROM hydroponic_systems s
	JOIN users u ON u.user_id = s.owner_id`

// SystemReadRepository handles hydroponic system read operations
type SystemReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSystemReadRepository(db *sqlx.DB, txGetter TxGetter) *SystemReadRepository {
	return &SystemReadRepository{db: db, txGetter: txGetter}
}

// List returns the systems owned by ownerID that match f.
// The owner predicate is always the first condition.
func (r *SystemReadRepository) List(ctx context.Context, ownerID uuid.UUID, f filters.SystemFilter) ([]models.SystemDB, error) {
	w := &filters.Where{}
	w.Add(`s.owner_id = ?`, ownerID)
	f.Apply(w)

	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(systemSelect + w.SQL() + f.OrderBy())

	systems := []models.SystemDB{}
	err := sqlx.SelectContext(ctx, ex, &systems, query, w.Args()...)

	logQuery(query, w.Args(), len(systems), err)

	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	return systems, nil
}

// GetBySlug returns the system with the slug regardless of owner, or nil.
func (r *SystemReadRepository) GetBySlug(ctx context.Context, slug string) (*models.SystemDB, error) {
	query := systemSelect + ` WHERE s.slug = $1`

	var system models.SystemDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &system, query, slug)

	logQuery(query, []any{slug}, system.SystemID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get system by slug: %w", err)
	}
	return &system, nil
}

// ListSlugs returns slugs equal to base or of the form base-<suffix>,
// ignoring the system identified by exclude.
func (r *SystemReadRepository) ListSlugs(ctx context.Context, base string, exclude uuid.UUID) ([]string, error) {
	const query = `
		SELECT slug FROM hydroponic_systems
		WHERE (slug = $1 OR slug LIKE $2) AND system_id <> $3`

	args := []any{base, filters.StartsWith(base + "-"), exclude}

	slugs := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &slugs, query, args...)

	logQuery(query, args, len(slugs), err)

	if err != nil {
		return nil, fmt.Errorf("list slugs: %w", err)
	}
	return slugs, nil
}

// SystemWriteRepository handles hydroponic system write operations
type SystemWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSystemWriteRepository(db *sqlx.DB, txGetter TxGetter) *SystemWriteRepository {
	return &SystemWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the system, assigning an id when missing and filling timestamps.
func (r *SystemWriteRepository) Save(ctx context.Context, system *models.SystemDB) error {
	const query = `
		INSERT INTO hydroponic_systems (system_id, owner_id, name, description, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`

	if system.SystemID == uuid.Nil {
		system.SystemID = uuid.New()
	}
	args := []any{system.SystemID, system.OwnerID, system.Name, system.Description, system.Slug}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&system.CreatedAt, &system.UpdatedAt)

	logQuery(query, args, system.SystemID, err)

	if err != nil {
		return fmt.Errorf("save system: %w", err)
	}
	return nil
}

// Update overwrites name, description and slug. It returns sql.ErrNoRows
// when the system no longer exists.
func (r *SystemWriteRepository) Update(ctx context.Context, system *models.SystemDB) error {
	const query = `
		UPDATE hydroponic_systems
		SET name = $2, description = $3, slug = $4, updated_at = NOW()
		WHERE system_id = $1
		RETURNING updated_at`

	args := []any{system.SystemID, system.Name, system.Description, system.Slug}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&system.UpdatedAt)

	logQuery(query, args, system.UpdatedAt, err)

	if err != nil {
		return fmt.Errorf("update system: %w", err)
	}
	return nil
}

// Delete removes the system; its measurements go with it via ON DELETE CASCADE.
func (r *SystemWriteRepository) Delete(ctx context.Context, systemID uuid.UUID) error {
	const query = `DELETE FROM hydroponic_systems WHERE system_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, systemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{systemID}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete system: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
