package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

const sosColumns = `
	id,
	tracking_id,
	full_name,
	cnic,
	phone,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	location_address,
	people_count,
	emergency_type,
	description,
	province_id,
	district_id,
	status,
	priority_score,
	urgency_overridden,
	assigned_team_id,
	cancel_reason,
	created_at,
	updated_at,
	triaged_at,
	assigned_at,
	resolved_at,
	cancelled_at`

type SOSRepository struct {
	db *pgxpool.Pool
}

func NewSOSRepository(db *pgxpool.Pool) service.SOSRepository {
	return &SOSRepository{db: db}
}

// NextID резервирует внутренний идентификатор до выдачи номера отслеживания
func (r *SOSRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('sos_requests_id_seq');`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to reserve sos id: %w", err)
	}
	return id, nil
}

// Create создает новую запись SOS в бд
func (r *SOSRepository) Create(ctx context.Context, req *models.SOSRequest) error {
	query := `
		INSERT INTO sos_requests (
			id, tracking_id, full_name, cnic, phone, location, location_address,
			people_count, emergency_type, description, province_id, district_id,
			status, priority_score, urgency_overridden, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.TrackingID,
		req.FullName,
		req.CNIC,
		req.Phone,
		req.Location.Lng,
		req.Location.Lat,
		req.Location.Address,
		req.PeopleCount,
		req.EmergencyType,
		req.Description,
		req.ProvinceID,
		req.DistrictID,
		req.Status,
		req.PriorityScore,
		req.UrgencyOverridden,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sos request: %w", err)
	}
	return nil
}

// GetByID возвращает SOS-запрос по идентификатору
func (r *SOSRepository) GetByID(ctx context.Context, id int64) (*models.SOSRequest, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_requests WHERE id = $1;`
	req, err := scanSOS(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos request %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sos request by id: %w", err)
	}
	return req, nil
}

// Update обновляет изменяемые поля, только если статус в бд равен expected
func (r *SOSRepository) Update(ctx context.Context, req *models.SOSRequest, expected models.SOSStatus) error {
	query := `
		UPDATE sos_requests SET
			status = $2,
			priority_score = $3,
			urgency_overridden = $4,
			assigned_team_id = $5,
			cancel_reason = $6,
			updated_at = $7,
			triaged_at = $8,
			assigned_at = $9,
			resolved_at = $10,
			cancelled_at = $11
		WHERE id = $1 AND status = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		req.ID,
		req.Status,
		req.PriorityScore,
		req.UrgencyOverridden,
		req.AssignedTeamID,
		req.CancelReason,
		req.UpdatedAt,
		req.TriagedAt,
		req.AssignedAt,
		req.ResolvedAt,
		req.CancelledAt,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update sos request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, req.ID); err != nil {
			return err
		}
		return fmt.Errorf("sos request %d is no longer %s: %w", req.ID, expected, models.ErrConflict)
	}
	return nil
}

// List возвращает страницу запросов, самые срочные первыми
func (r *SOSRepository) List(ctx context.Context, filter models.SOSFilter, page, pageSize int) ([]*models.SOSRequest, error) {
	where, args := sosWhere(filter)
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT %s FROM sos_requests%s
		ORDER BY priority_score DESC, created_at ASC, id ASC
		LIMIT $%d OFFSET $%d;
	`, sosColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.SOSRequest, 0)
	for rows.Next() {
		req, err := scanSOS(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}

func (r *SOSRepository) Count(ctx context.Context, filter models.SOSFilter) (int, error) {
	where, args := sosWhere(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sos_requests`+where+`;`, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sos requests: %w", err)
	}
	return count, nil
}

func sosWhere(filter models.SOSFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.ProvinceID > 0 {
		args = append(args, filter.ProvinceID)
		conds = append(conds, fmt.Sprintf("province_id = $%d", len(args)))
	}
	if filter.DistrictID > 0 {
		args = append(args, filter.DistrictID)
		conds = append(conds, fmt.Sprintf("district_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ActiveOnly {
		active := models.ActiveSOSStatuses()
		statuses := make([]string, 0, len(active))
		for _, s := range active {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanSOS(row pgx.Row) (*models.SOSRequest, error) {
	req := &models.SOSRequest{}
	err := row.Scan(
		&req.ID,
		&req.TrackingID,
		&req.FullName,
		&req.CNIC,
		&req.Phone,
		&req.Location.Lat,
		&req.Location.Lng,
		&req.Location.Address,
		&req.PeopleCount,
		&req.EmergencyType,
		&req.Description,
		&req.ProvinceID,
		&req.DistrictID,
		&req.Status,
		&req.PriorityScore,
		&req.UrgencyOverridden,
		&req.AssignedTeamID,
		&req.CancelReason,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.TriagedAt,
		&req.AssignedAt,
		&req.ResolvedAt,
		&req.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}
