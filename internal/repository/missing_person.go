package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

type MissingPersonRepository struct {
	db *pgxpool.Pool
}

func NewMissingPersonRepository(db *pgxpool.Pool) service.MissingPersonRepository {
	return &MissingPersonRepository{db: db}
}

func (r *MissingPersonRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('missing_persons_id_seq');`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to reserve missing person id: %w", err)
	}
	return id, nil
}

// Create создает дело о пропавшем человеке. Точка последнего появления необязательна.
func (r *MissingPersonRepository) Create(ctx context.Context, c *models.MissingPersonCase) error {
	var lat, lng *float64
	if c.LastSeen != nil {
		lat, lng = &c.LastSeen.Lat, &c.LastSeen.Lng
	}
	query := `
		INSERT INTO missing_persons (
			id, tracking_id, full_name, age, gender, last_seen_location, last_seen,
			description, reporter_name, reporter_phone, reporter_cnic,
			province_id, district_id, status, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			CASE WHEN $7::float8 IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($7, $8), 4326) END,
			$9, $10, $11, $12, $13, $14, $15, $16, $17
		);
	`
	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.TrackingID,
		c.FullName,
		c.Age,
		c.Gender,
		c.LastSeenLocation,
		lng,
		lat,
		c.Description,
		c.ReporterName,
		c.ReporterPhone,
		c.ReporterCNIC,
		c.ProvinceID,
		c.DistrictID,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create missing person case: %w", err)
	}
	return nil
}

func (r *MissingPersonRepository) GetByID(ctx context.Context, id int64) (*models.MissingPersonCase, error) {
	query := `
		SELECT
			id,
			tracking_id,
			full_name,
			age,
			gender,
			last_seen_location,
			ST_Y(last_seen::geometry) as latitude,
			ST_X(last_seen::geometry) as longitude,
			description,
			reporter_name,
			reporter_phone,
			reporter_cnic,
			province_id,
			district_id,
			status,
			close_reason,
			created_at,
			updated_at,
			found_at,
			closed_at
		FROM missing_persons
		WHERE id = $1;
	`
	c := &models.MissingPersonCase{}
	var lat, lng *float64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.TrackingID,
		&c.FullName,
		&c.Age,
		&c.Gender,
		&c.LastSeenLocation,
		&lat,
		&lng,
		&c.Description,
		&c.ReporterName,
		&c.ReporterPhone,
		&c.ReporterCNIC,
		&c.ProvinceID,
		&c.DistrictID,
		&c.Status,
		&c.CloseReason,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.FoundAt,
		&c.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("missing person case %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get missing person case by id: %w", err)
	}
	if lat != nil && lng != nil {
		c.LastSeen = &models.Location{Lat: *lat, Lng: *lng, Address: c.LastSeenLocation}
	}
	return c, nil
}

// Update меняет статус дела, только если статус в бд равен expected
func (r *MissingPersonRepository) Update(ctx context.Context, c *models.MissingPersonCase, expected models.MissingPersonStatus) error {
	query := `
		UPDATE missing_persons SET
			status = $2,
			close_reason = $3,
			updated_at = $4,
			found_at = $5,
			closed_at = $6
		WHERE id = $1 AND status = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID,
		c.Status,
		c.CloseReason,
		c.UpdatedAt,
		c.FoundAt,
		c.ClosedAt,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update missing person case: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
		return fmt.Errorf("missing person case %d is no longer %s: %w", c.ID, expected, models.ErrConflict)
	}
	return nil
}
