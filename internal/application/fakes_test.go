package application

import (
	"context"
	"strings"
	"time"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	"github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// In-memory repository fakes. They preserve insertion order so search and
// list results are deterministic.

type memRecipientRepo struct {
	order []string
	items map[string]entity.Recipient
}

func newMemRecipientRepo() *memRecipientRepo {
	return &memRecipientRepo{items: map[string]entity.Recipient{}}
}

func (m *memRecipientRepo) FindByID(_ context.Context, id string) (*entity.Recipient, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memRecipientRepo) Search(_ context.Context, query string) ([]entity.Recipient, error) {
	out := []entity.Recipient{}
	for _, id := range m.order {
		r := m.items[id]
		if strings.Contains(r.Address.Full, query) || strings.Contains(r.Phone, query) {
			out = append(out, r)
			if len(out) == 10 {
				break
			}
		}
	}
	return out, nil
}

func (m *memRecipientRepo) Create(_ context.Context, r *entity.Recipient) error {
	m.order = append(m.order, r.ID)
	m.items[r.ID] = *r
	return nil
}

func (m *memRecipientRepo) Update(_ context.Context, r *entity.Recipient) error {
	if _, ok := m.items[r.ID]; !ok {
		return repository.ErrNotFound
	}
	m.items[r.ID] = *r
	return nil
}

func (m *memRecipientRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memDeliveryRepo struct {
	order   []string
	items   map[string]entity.Delivery
	daily   []repository.DailyStat
	monthly []repository.MonthlyStat
}

func newMemDeliveryRepo() *memDeliveryRepo {
	return &memDeliveryRepo{items: map[string]entity.Delivery{}}
}

func (m *memDeliveryRepo) FindByID(_ context.Context, id string) (*entity.Delivery, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (m *memDeliveryRepo) FindAll(_ context.Context) ([]entity.Delivery, error) {
	out := []entity.Delivery{}
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *memDeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	d.Status = entity.StatusPickedUp
	d.UpdatedAt = time.Now().UTC()
	m.order = append(m.order, d.ID)
	m.items[d.ID] = *d
	return nil
}

func (m *memDeliveryRepo) UpdateStatus(_ context.Context, id string, status entity.Status) error {
	d, ok := m.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	m.items[id] = d
	return nil
}

func (m *memDeliveryRepo) DailyStats(_ context.Context, _, _ string) ([]repository.DailyStat, error) {
	return m.daily, nil
}

func (m *memDeliveryRepo) MonthlyStats(_ context.Context, _ string) ([]repository.MonthlyStat, error) {
	return m.monthly, nil
}

type memContactRepo struct {
	order   []string
	items   map[string]entity.Contact
	creates int
	updates int
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{items: map[string]entity.Contact{}}
}

func (m *memContactRepo) FindByID(_ context.Context, id string) (*entity.Contact, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memContactRepo) FindAll(_ context.Context) ([]entity.Contact, error) {
	out := []entity.Contact{}
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *memContactRepo) FindByBusinessName(_ context.Context, businessName string) (*entity.Contact, error) {
	for _, id := range m.order {
		if m.items[id].BusinessName == businessName {
			c := m.items[id]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memContactRepo) Create(_ context.Context, c *entity.Contact) error {
	m.creates++
	m.order = append(m.order, c.ID)
	m.items[c.ID] = *c
	return nil
}

func (m *memContactRepo) Update(_ context.Context, c *entity.Contact) error {
	if _, ok := m.items[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.updates++
	m.items[c.ID] = *c
	return nil
}

func (m *memContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

var (
	_ repository.RecipientRepository = (*memRecipientRepo)(nil)
	_ repository.DeliveryRepository  = (*memDeliveryRepo)(nil)
	_ repository.ContactRepository   = (*memContactRepo)(nil)
)
