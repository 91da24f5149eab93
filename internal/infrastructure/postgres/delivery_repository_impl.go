package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	"github.com/quickhaul/logistics-backend/internal/domain/repository"
)

const deliverySelect = `
	SELECT d.id, d.pickup_place, d.box_count, d.settlement, d.fee, d.note,
	       d.status, d.updated_at,
	       r.id, r.name, r.phone, r.address, r.memo, r.lat, r.lng
	FROM deliveries d
	JOIN recipients r ON r.id = d.recipient_id
`

type DeliveryRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{pool: pool}
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	row := r.pool.QueryRow(ctx, deliverySelect+` WHERE d.id = $1`, id)
	d, err := scanDelivery(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *DeliveryRepository) FindAll(ctx context.Context) ([]entity.Delivery, error) {
	rows, err := r.pool.Query(ctx, deliverySelect)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Delivery{}
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *DeliveryRepository) Create(ctx context.Context, d *entity.Delivery) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Status = entity.StatusPickedUp
	d.UpdatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deliveries (id, recipient_id, pickup_place, box_count, settlement, fee, note, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, d.ID, d.Recipient.ID, d.PickupPlace, d.BoxCount, string(d.Settlement), d.Fee, d.Note, string(d.Status), d.UpdatedAt)
	return err
}

func (r *DeliveryRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE deliveries
		SET status = $1, updated_at = $2
		WHERE id = $3
	`, string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DeliveryRepository) DailyStats(ctx context.Context, startDate, endDate string) ([]repository.DailyStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(updated_at, 'YYYY-MM-DD') AS day,
		       COUNT(*),
		       COALESCE(SUM(box_count), 0),
		       COALESCE(SUM(fee), 0),
		       COUNT(*) FILTER (WHERE status = 'SETTLED')
		FROM deliveries
		WHERE updated_at::date BETWEEN $1::date AND $2::date
		GROUP BY day
		ORDER BY day DESC
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []repository.DailyStat{}
	for rows.Next() {
		var s repository.DailyStat
		if err := rows.Scan(&s.Day, &s.Deliveries, &s.Boxes, &s.Fees, &s.Settled); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *DeliveryRepository) MonthlyStats(ctx context.Context, yearMonth string) ([]repository.MonthlyStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(updated_at, 'YYYY-MM') AS month,
		       COUNT(*),
		       COALESCE(SUM(box_count), 0),
		       COALESCE(SUM(fee), 0),
		       COUNT(*) FILTER (WHERE status = 'SETTLED')
		FROM deliveries
		WHERE to_char(updated_at, 'YYYY-MM') = $1
		GROUP BY month
		ORDER BY month DESC
	`, yearMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []repository.MonthlyStat{}
	for rows.Next() {
		var s repository.MonthlyStat
		if err := rows.Scan(&s.Month, &s.Deliveries, &s.Boxes, &s.Fees, &s.Settled); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	d := &entity.Delivery{}
	if err := row.Scan(&d.ID, &d.PickupPlace, &d.BoxCount, &d.Settlement, &d.Fee, &d.Note,
		&d.Status, &d.UpdatedAt,
		&d.Recipient.ID, &d.Recipient.Name, &d.Recipient.Phone, &d.Recipient.Address.Full,
		&d.Recipient.Memo, &d.Recipient.Address.Lat, &d.Recipient.Address.Lng); err != nil {
		return nil, err
	}
	return d, nil
}

var _ repository.DeliveryRepository = (*DeliveryRepository)(nil)
