package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// AuthorityRepository читает справочник органов, заполненный миграцией
type AuthorityRepository struct {
	db *pgxpool.Pool
}

func NewAuthorityRepository(db *pgxpool.Pool) *AuthorityRepository {
	return &AuthorityRepository{db: db}
}

// ListAuthorities возвращает все органы. Дерево собирает hierarchy.New.
func (r *AuthorityRepository) ListAuthorities(ctx context.Context) ([]models.Authority, error) {
	query := `
		SELECT id, tier, province_id, district_id, name, COALESCE(parent_id, '')
		FROM authorities
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorities: %w", err)
	}
	defer rows.Close()

	authorities := make([]models.Authority, 0)
	for rows.Next() {
		var a models.Authority
		if err := rows.Scan(&a.ID, &a.Tier, &a.ProvinceID, &a.DistrictID, &a.Name, &a.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan authority row: %w", err)
		}
		authorities = append(authorities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return authorities, nil
}
