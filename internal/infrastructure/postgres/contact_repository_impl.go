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

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, business_name, phone, address, note
		FROM contacts
		WHERE id = $1
	`, id)
	return scanContact(row)
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, business_name, phone, address, note
		FROM contacts
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Contact{}
	for rows.Next() {
		c := entity.Contact{}
		if err := rows.Scan(&c.ID, &c.BusinessName, &c.Phone, &c.Address, &c.Note); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContactRepository) FindByBusinessName(ctx context.Context, businessName string) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, business_name, phone, address, note
		FROM contacts
		WHERE business_name = $1
		LIMIT 1
	`, businessName)
	return scanContact(row)
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contacts (id, business_name, phone, address, note)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.BusinessName, c.Phone, c.Address, c.Note)
	return err
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE contacts
		SET business_name = $1, phone = $2, address = $3, note = $4
		WHERE id = $5
	`, c.BusinessName, c.Phone, c.Address, c.Note, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	c := &entity.Contact{}
	if err := row.Scan(&c.ID, &c.BusinessName, &c.Phone, &c.Address, &c.Note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
