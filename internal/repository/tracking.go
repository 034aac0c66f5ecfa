package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

type TrackingRepository struct {
	db *pgxpool.Pool
}

func NewTrackingRepository(db *pgxpool.Pool) service.TrackingRepository {
	return &TrackingRepository{db: db}
}

// NextSequence атомарно увеличивает счётчик (тип дела, год) и возвращает новое значение
func (r *TrackingRepository) NextSequence(ctx context.Context, caseType models.CaseType, year int) (int64, error) {
	query := `
		INSERT INTO tracking_sequences (case_type, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (case_type, year) DO UPDATE SET last_value = tracking_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := r.db.QueryRow(ctx, query, caseType, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance tracking sequence: %w", err)
	}
	return seq, nil
}

// Create сохраняет неизменяемую запись номера отслеживания
func (r *TrackingRepository) Create(ctx context.Context, record *models.TrackingRecord) error {
	query := `
		INSERT INTO tracking_records (tracking_id, case_type, internal_id, cnic, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5);
	`
	_, err := r.db.Exec(ctx, query,
		record.TrackingID,
		record.CaseType,
		record.InternalID,
		record.CNIC,
		record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("tracking id %s already issued: %w", record.TrackingID, models.ErrConflict)
		}
		return fmt.Errorf("failed to create tracking record: %w", err)
	}
	return nil
}

func (r *TrackingRepository) Get(ctx context.Context, trackingID string) (*models.TrackingRecord, error) {
	query := `
		SELECT tracking_id, case_type, internal_id, COALESCE(cnic, ''), created_at
		FROM tracking_records
		WHERE tracking_id = $1;
	`
	record := &models.TrackingRecord{}
	err := r.db.QueryRow(ctx, query, trackingID).Scan(
		&record.TrackingID,
		&record.CaseType,
		&record.InternalID,
		&record.CNIC,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tracking id %s: %w", trackingID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tracking record: %w", err)
	}
	return record, nil
}

// ListByCNIC возвращает все номера, выданные на CNIC. Порядок задаёт сервис.
func (r *TrackingRepository) ListByCNIC(ctx context.Context, cnic string) ([]*models.TrackingRecord, error) {
	query := `
		SELECT tracking_id, case_type, internal_id, cnic, created_at
		FROM tracking_records
		WHERE cnic = $1;
	`
	rows, err := r.db.Query(ctx, query, cnic)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking records by cnic: %w", err)
	}
	defer rows.Close()

	records := make([]*models.TrackingRecord, 0)
	for rows.Next() {
		record := &models.TrackingRecord{}
		if err := rows.Scan(
			&record.TrackingID,
			&record.CaseType,
			&record.InternalID,
			&record.CNIC,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tracking record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
