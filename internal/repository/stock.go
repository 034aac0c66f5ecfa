package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

type StockRepository struct {
	db *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) service.StockRepository {
	return &StockRepository{db: db}
}

// GetEntry возвращает остаток органа по типу ресурса
func (r *StockRepository) GetEntry(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (*models.StockEntry, error) {
	query := `
		SELECT authority_id, resource_type, available, allocated_out, unit, version, updated_at
		FROM stock_entries
		WHERE authority_id = $1 AND resource_type = $2;
	`
	entry := &models.StockEntry{}
	err := r.db.QueryRow(ctx, query, authorityID, resourceType).Scan(
		&entry.AuthorityID,
		&entry.ResourceType,
		&entry.Available,
		&entry.AllocatedOut,
		&entry.Unit,
		&entry.Version,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stock %s/%s: %w", authorityID, resourceType, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stock entry: %w", err)
	}
	return entry, nil
}

// ListEntries возвращает все сохранённые остатки органа
func (r *StockRepository) ListEntries(ctx context.Context, authorityID models.AuthorityID) ([]*models.StockEntry, error) {
	query := `
		SELECT authority_id, resource_type, available, allocated_out, unit, version, updated_at
		FROM stock_entries
		WHERE authority_id = $1
		ORDER BY resource_type;
	`
	rows, err := r.db.Query(ctx, query, authorityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.StockEntry, 0)
	for rows.Next() {
		entry := &models.StockEntry{}
		if err := rows.Scan(
			&entry.AuthorityID,
			&entry.ResourceType,
			&entry.Available,
			&entry.AllocatedOut,
			&entry.Unit,
			&entry.Version,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

// GetReservation возвращает резерв по токену
func (r *StockRepository) GetReservation(ctx context.Context, token uuid.UUID) (*models.Reservation, error) {
	query := `
		SELECT token, source_authority_id, recipient_authority_id, resource_type, quantity, state, created_at, updated_at
		FROM stock_reservations
		WHERE token = $1;
	`
	res := &models.Reservation{}
	err := r.db.QueryRow(ctx, query, token).Scan(
		&res.Token,
		&res.SourceAuthorityID,
		&res.RecipientAuthorityID,
		&res.ResourceType,
		&res.Quantity,
		&res.State,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s: %w", token, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// Apply записывает изменение журнала в одной транзакции.
// Каждая строка обновляется только при совпадении версии, иначе models.ErrVersionConflict.
func (r *StockRepository) Apply(ctx context.Context, change models.LedgerChange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin ledger transaction: %w", err)
	}
	// после Commit откат ничего не делает
	defer func() { _ = tx.Rollback(ctx) }()

	for _, entry := range change.Entries {
		if err := applyEntry(ctx, tx, entry); err != nil {
			return err
		}
	}
	if change.Reservation != nil {
		if err := applyReservation(ctx, tx, change.Reservation, change.ReservationFrom); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger transaction: %w", err)
	}
	return nil
}

func applyEntry(ctx context.Context, tx pgx.Tx, entry models.StockEntry) error {
	if entry.Version == 0 {
		query := `
			INSERT INTO stock_entries (authority_id, resource_type, available, allocated_out, unit, version, updated_at)
			VALUES ($1, $2, $3, $4, $5, 1, NOW())
			ON CONFLICT (authority_id, resource_type) DO NOTHING;
		`
		cmdTag, err := tx.Exec(ctx, query, entry.AuthorityID, entry.ResourceType, entry.Available, entry.AllocatedOut, entry.ResourceType.Unit())
		if err != nil {
			return fmt.Errorf("failed to insert stock entry: %w", err)
		}
		// строку успел создать параллельный запрос
		if cmdTag.RowsAffected() == 0 {
			return models.ErrVersionConflict
		}
		return nil
	}

	query := `
		UPDATE stock_entries SET
			available = $3,
			allocated_out = $4,
			version = version + 1,
			updated_at = NOW()
		WHERE authority_id = $1 AND resource_type = $2 AND version = $5;
	`
	cmdTag, err := tx.Exec(ctx, query, entry.AuthorityID, entry.ResourceType, entry.Available, entry.AllocatedOut, entry.Version)
	if err != nil {
		return fmt.Errorf("failed to update stock entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrVersionConflict
	}
	return nil
}

func applyReservation(ctx context.Context, tx pgx.Tx, res *models.Reservation, from models.ReservationState) error {
	if from == "" {
		query := `
			INSERT INTO stock_reservations (token, source_authority_id, recipient_authority_id, resource_type, quantity, state, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (token) DO NOTHING;
		`
		cmdTag, err := tx.Exec(ctx, query,
			res.Token,
			res.SourceAuthorityID,
			res.RecipientAuthorityID,
			res.ResourceType,
			res.Quantity,
			res.State,
			res.CreatedAt,
			res.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return models.ErrVersionConflict
		}
		return nil
	}

	query := `
		UPDATE stock_reservations SET
			state = $2,
			updated_at = $3
		WHERE token = $1 AND state = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, res.Token, res.State, res.UpdatedAt, from)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrVersionConflict
	}
	return nil
}
