package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/campaign-desk/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCampaignRepo is the durable store, selected with
// STORAGE_DRIVER=postgres. Ids come from a bigserial so they stay monotonic
// like the in-memory store's.
type PostgresCampaignRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresCampaignRepo(pool *pgxpool.Pool) *PostgresCampaignRepo {
	return &PostgresCampaignRepo{pool: pool}
}

func (r *PostgresCampaignRepo) Create(ctx context.Context, c *models.StoredCampaign) error {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (owner_user_id, name, budget, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, c.OwnerUserID, c.Name, c.Budget, c.StartDate, c.EndDate, c.Status,
	).Scan(&id, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	c.ID = strconv.FormatInt(id, 10)
	return nil
}

func (r *PostgresCampaignRepo) GetByID(ctx context.Context, id string) (*models.StoredCampaign, error) {
	numID, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var c models.StoredCampaign
	err = r.pool.QueryRow(ctx, `
		SELECT id::text, owner_user_id, name, budget, start_date, end_date,
		       status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, numID).Scan(&c.ID, &c.OwnerUserID, &c.Name, &c.Budget, &c.StartDate,
		&c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.StoredCampaign, error) {
	query := `
		SELECT id::text, owner_user_id, name, budget, start_date, end_date,
		       status, created_at, updated_at
		FROM campaigns
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.OwnerUserID != nil {
		where = append(where, fmt.Sprintf("owner_user_id = $%d", argIdx))
		args = append(args, *f.OwnerUserID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.StoredCampaign
	for rows.Next() {
		var c models.StoredCampaign
		if err := rows.Scan(&c.ID, &c.OwnerUserID, &c.Name, &c.Budget,
			&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *PostgresCampaignRepo) Replace(ctx context.Context, c *models.StoredCampaign) error {
	numID, err := parseID(c.ID)
	if err != nil {
		return ErrNotFound
	}

	err = r.pool.QueryRow(ctx, `
		UPDATE campaigns SET name = $1, budget = $2, start_date = $3,
		       end_date = $4, updated_at = now()
		WHERE id = $5
		RETURNING owner_user_id, status, created_at, updated_at
	`, c.Name, c.Budget, c.StartDate, c.EndDate, numID,
	).Scan(&c.OwnerUserID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresCampaignRepo) UpdateStatus(ctx context.Context, id, status string) error {
	numID, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2
	`, status, numID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCampaignRepo) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, numID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
