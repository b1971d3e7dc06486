package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"datafeed/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// saleColumns is the shared select list for sale property queries. The
// legacy schema stored the area under two different column names over the
// years, hence the COALESCE.
const saleColumns = `
	p.id, p.propcode, p.pname, p.price,
	COALESCE(p.area_name, p.areaname) AS area_name,
	p.bedrooms, p.bathrooms, t.descr AS type_desc,
	p.descr, p.descrlong, p.descrshort,
	p.imagegallery, p.image,
	COALESCE(p.pool, false) AS pool,
	p.status, p.created_at
`

// SaleByReference retrieves a sale property by its numeric reference.
// References in playlists are property codes, but older playlists used the
// raw row id, so both are matched. Returns (nil, nil) when not found.
func (r *PostgresRepository) SaleByReference(ctx context.Context, ref string) (*model.SaleProperty, error) {
	var prop model.SaleProperty
	query := fmt.Sprintf(`
		SELECT %s
		FROM prop p
		LEFT JOIN ptype t ON t.ptype_ref = p.ptype_ref
		WHERE p.propcode = $1 OR p.id::text = $1
		LIMIT 1
	`, saleColumns)
	err := r.db.GetContext(ctx, &prop, query, ref)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale property %s: %w", ref, err)
	}
	return &prop, nil
}

// RentalByReference retrieves a rental property by its alphanumeric
// prop_ref. Returns (nil, nil) when not found.
func (r *PostgresRepository) RentalByReference(ctx context.Context, ref string) (*model.RentalProperty, error) {
	var rental model.RentalProperty
	query := `
		SELECT
			p.prop_ref, p.pname, p.rprice, p.rcurrency,
			COALESCE(p.area_name, p.areaname) AS area_name,
			p.rbeds, p.bedrooms, t.descr AS type_desc,
			p.rdescr_en, p.descr,
			COALESCE(p.pool, false) AS pool,
			p.rcomm_max, p.rimage
		FROM prop p
		LEFT JOIN ptype t ON t.ptype_ref = p.ptype_ref
		WHERE p.prop_ref = $1
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &rental, query, ref)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rental property %s: %w", ref, err)
	}
	return &rental, nil
}

// ListProperties performs a filtered, paged sale property listing
func (r *PostgresRepository) ListProperties(
	ctx context.Context,
	filters *model.PropertyFilters,
	limit, offset int,
) ([]model.SaleProperty, int, error) {
	// Build WHERE clause
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filters != nil {
		if filters.Status != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("p.status = $%d", argIndex))
			args = append(args, *filters.Status)
			argIndex++
		}
		if filters.Type != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("t.descr ILIKE $%d", argIndex))
			args = append(args, "%"+*filters.Type+"%")
			argIndex++
		}
	}

	whereClause := strings.Join(whereClauses, " AND ")

	// Count total matching records
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM prop p
		LEFT JOIN ptype t ON t.ptype_ref = p.ptype_ref
		WHERE %s
	`, whereClause)
	var total int
	err := r.db.GetContext(ctx, &total, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM prop p
		LEFT JOIN ptype t ON t.ptype_ref = p.ptype_ref
		WHERE %s
		ORDER BY p.created_at DESC NULLS LAST
		LIMIT $%d OFFSET $%d
	`, saleColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	var properties []model.SaleProperty
	err = r.db.SelectContext(ctx, &properties, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

// LogBuild logs one playlist build for diagnostics
func (r *PostgresRepository) LogBuild(ctx context.Context, lineCount, emitted int, skippedRefs []string, durationMs int) error {
	query := `
		INSERT INTO slideshow_logs (line_count, emitted_count, skipped_refs, duration_ms)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, lineCount, emitted, pq.Array(skippedRefs), durationMs)
	if err != nil {
		return fmt.Errorf("failed to log build: %w", err)
	}
	return nil
}
