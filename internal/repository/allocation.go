package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

const allocationColumns = `
	id, requester_authority_id, target_authority_id, resource_type, quantity, priority,
	reason, notes, status, reservation_token, decision_note, decided_by,
	created_at, updated_at, decided_at, fulfilled_at, cancelled_at`

type AllocationRepository struct {
	db *pgxpool.Pool
}

func NewAllocationRepository(db *pgxpool.Pool) service.AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create создает новую заявку на ресурсы в бд
func (r *AllocationRepository) Create(ctx context.Context, req *models.AllocationRequest) error {
	query := `
		INSERT INTO allocation_requests (` + allocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.RequesterAuthorityID,
		req.TargetAuthorityID,
		req.ResourceType,
		req.Quantity,
		req.Priority,
		req.Reason,
		req.Notes,
		req.Status,
		req.ReservationToken,
		req.DecisionNote,
		req.DecidedBy,
		req.CreatedAt,
		req.UpdatedAt,
		req.DecidedAt,
		req.FulfilledAt,
		req.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create allocation request: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по её UUID
func (r *AllocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocation_requests WHERE id = $1;`
	req, err := scanAllocation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("allocation %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get allocation request by id: %w", err)
	}
	return req, nil
}

// Update - условная запись: строка меняется, только если статус в бд равен expected
func (r *AllocationRepository) Update(ctx context.Context, req *models.AllocationRequest, expected models.AllocationStatus) error {
	query := `
		UPDATE allocation_requests SET
			status = $2,
			reservation_token = $3,
			decision_note = $4,
			decided_by = $5,
			updated_at = $6,
			decided_at = $7,
			fulfilled_at = $8,
			cancelled_at = $9
		WHERE id = $1 AND status = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ReservationToken,
		req.DecisionNote,
		req.DecidedBy,
		req.UpdatedAt,
		req.DecidedAt,
		req.FulfilledAt,
		req.CancelledAt,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update allocation request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, req.ID); err != nil {
			return err
		}
		return fmt.Errorf("allocation %s is no longer %s: %w", req.ID, expected, models.ErrConflict)
	}
	return nil
}

// List возвращает заявки в порядке поступления
func (r *AllocationRepository) List(ctx context.Context, filter models.AllocationFilter) ([]*models.AllocationRequest, error) {
	where, args := allocationWhere(filter)
	query := `SELECT ` + allocationColumns + ` FROM allocation_requests` + where + ` ORDER BY created_at ASC, id ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.AllocationRequest, 0)
	for rows.Next() {
		req, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}

func (r *AllocationRepository) Count(ctx context.Context, filter models.AllocationFilter) (int, error) {
	where, args := allocationWhere(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM allocation_requests`+where+`;`, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count allocation requests: %w", err)
	}
	return count, nil
}

func allocationWhere(filter models.AllocationFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.TargetAuthorityID != "" {
		args = append(args, filter.TargetAuthorityID)
		conds = append(conds, fmt.Sprintf("target_authority_id = $%d", len(args)))
	}
	if filter.RequesterAuthorityID != "" {
		args = append(args, filter.RequesterAuthorityID)
		conds = append(conds, fmt.Sprintf("requester_authority_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanAllocation(row pgx.Row) (*models.AllocationRequest, error) {
	req := &models.AllocationRequest{}
	err := row.Scan(
		&req.ID,
		&req.RequesterAuthorityID,
		&req.TargetAuthorityID,
		&req.ResourceType,
		&req.Quantity,
		&req.Priority,
		&req.Reason,
		&req.Notes,
		&req.Status,
		&req.ReservationToken,
		&req.DecisionNote,
		&req.DecidedBy,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.DecidedAt,
		&req.FulfilledAt,
		&req.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}
