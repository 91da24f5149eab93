package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	"github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// searchLimit caps the free-text recipient search result set.
const searchLimit = 10

type RecipientRepository struct {
	pool *pgxpool.Pool
}

func NewRecipientRepository(pool *pgxpool.Pool) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

func (r *RecipientRepository) FindByID(ctx context.Context, id string) (*entity.Recipient, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, phone, address, memo, lat, lng
		FROM recipients
		WHERE id = $1
	`, id)

	rec, err := scanRecipient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *RecipientRepository) Search(ctx context.Context, query string) ([]entity.Recipient, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, address, memo, lat, lng
		FROM recipients
		WHERE address LIKE $1 OR phone LIKE $1
		LIMIT $2
	`, pattern, searchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Recipient, 0, searchLimit)
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *RecipientRepository) Create(ctx context.Context, rec *entity.Recipient) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO recipients (id, name, phone, address, memo, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.Name, rec.Phone, rec.Address.Full, rec.Memo, rec.Address.Lat, rec.Address.Lng)
	return err
}

func (r *RecipientRepository) Update(ctx context.Context, rec *entity.Recipient) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE recipients
		SET name = $1, phone = $2, address = $3, memo = $4, lat = $5, lng = $6
		WHERE id = $7
	`, rec.Name, rec.Phone, rec.Address.Full, rec.Memo, rec.Address.Lat, rec.Address.Lng, rec.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanRecipient(row pgx.Row) (*entity.Recipient, error) {
	rec := &entity.Recipient{}
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Phone, &rec.Address.Full,
		&rec.Memo, &rec.Address.Lat, &rec.Address.Lng); err != nil {
		return nil, err
	}
	return rec, nil
}

var _ repository.RecipientRepository = (*RecipientRepository)(nil)
