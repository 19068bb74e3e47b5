package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/campaign-desk/backend/internal/models"
)

// MemoryCampaignRepo is the reference store: an append-only in-process list
// with ids that increase monotonically for the process lifetime. There is no
// deduplication — an identical resubmission gets a fresh id.
type MemoryCampaignRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[string]*models.StoredCampaign
	order  []string
}

func NewMemoryCampaignRepo() *MemoryCampaignRepo {
	return &MemoryCampaignRepo{
		nextID: 1,
		items:  make(map[string]*models.StoredCampaign),
	}
}

func (r *MemoryCampaignRepo) Create(_ context.Context, c *models.StoredCampaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	c.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	r.items[c.ID] = &stored
	r.order = append(r.order, c.ID)
	return nil
}

func (r *MemoryCampaignRepo) GetByID(_ context.Context, id string) (*models.StoredCampaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *MemoryCampaignRepo) List(_ context.Context, f CampaignFilter) ([]models.StoredCampaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.StoredCampaign
	// Newest first, like the SQL store's created_at DESC ordering.
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.items[r.order[i]]
		if f.OwnerUserID != nil && c.OwnerUserID != *f.OwnerUserID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		matched = append(matched, *c)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *MemoryCampaignRepo) Replace(_ context.Context, c *models.StoredCampaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[c.ID]
	if !ok {
		return ErrNotFound
	}

	c.OwnerUserID = existing.OwnerUserID
	c.Status = existing.Status
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	stored := *c
	r.items[c.ID] = &stored
	return nil
}

func (r *MemoryCampaignRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryCampaignRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
