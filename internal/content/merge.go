package content

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"eventrix/internal/geo"
	"eventrix/internal/models"
	"eventrix/internal/store"
	"eventrix/internal/utils"
)

// Catalog combines the baseline seed content with user-created records
// from the store. User records win on id collisions.
type Catalog struct {
	store store.Store
	ref   *models.Coordinates
	now   func() time.Time
}

func NewCatalog(s store.Store, ref *models.Coordinates) *Catalog {
	if ref == nil {
		r := ReferencePoint
		ref = &r
	}
	return &Catalog{store: s, ref: ref, now: time.Now}
}

// Reference returns the coordinate distances are measured from.
func (c *Catalog) Reference() models.Coordinates {
	return *c.ref
}

func (c *Catalog) baseline(kind string) []models.ContentItem {
	var items []models.ContentItem
	if kind == models.KindIssue {
		items = BaselineIssues()
	} else {
		items = BaselineEvents(c.now())
	}
	for i := range items {
		c.Annotate(&items[i])
	}
	return items
}

// Annotate fills in the distance fields for an item that carries
// coordinates.
func (c *Catalog) Annotate(item *models.ContentItem) {
	if item.Coordinates == nil {
		return
	}
	km := geo.DistanceKm(*c.ref, *item.Coordinates)
	item.DistanceKm = &km
	item.DistanceLabel = geo.Label(km)
}

// Merged returns baseline plus user records for a kind, deduplicated
// by id. A later record keeps the earlier record's position but
// replaces its fields entirely. If the store cannot be read the
// baseline alone is returned so browsing keeps working.
func (c *Catalog) Merged(ctx context.Context, kind string) []models.ContentItem {
	merged := c.baseline(kind)
	raw, found, err := c.store.Get(ctx, store.UserKey(kind))
	if err != nil {
		log.Printf("Catalog: reading user %ss failed, serving baseline only: %v", kind, err)
		return dedupeByID(merged)
	}
	if found {
		merged = append(merged, NormalizeAll(kind, raw, c.ref)...)
	}
	return dedupeByID(merged)
}

// dedupeByID collapses duplicate ids in a single pass. The first
// occurrence keeps its slot; the last occurrence supplies the fields.
func dedupeByID(items []models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if at, seen := index[item.ID]; seen {
			out[at] = item
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}

// Find returns the merged item with the given id.
func (c *Catalog) Find(ctx context.Context, kind, id string) (models.ContentItem, error) {
	for _, item := range c.Merged(ctx, kind) {
		if item.ID == id {
			return item, nil
		}
	}
	return models.ContentItem{}, utils.NewAppError(utils.ErrNotFound, "content not found", nil)
}

func (c *Catalog) userList(ctx context.Context, key string) ([]models.ContentItem, error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrStoreUnavailable, "store read failed", err)
	}
	if !found {
		return nil, nil
	}
	return NormalizeAll(kindForKey(key), raw, c.ref), nil
}

func kindForKey(key string) string {
	if key == store.KeyUserIssues || key == store.KeyDraftIssues {
		return models.KindIssue
	}
	return models.KindEvent
}

// SaveUserItem appends an item to the user collection, or replaces the
// stored record when one with the same id already exists.
func (c *Catalog) SaveUserItem(ctx context.Context, item models.ContentItem) error {
	return c.upsert(ctx, store.UserKey(item.Kind), item)
}

// SaveDraft stores an unpublished item in the drafts collection.
func (c *Catalog) SaveDraft(ctx context.Context, item models.ContentItem) error {
	return c.upsert(ctx, store.DraftKey(item.Kind), item)
}

// Drafts returns the stored drafts for a kind.
func (c *Catalog) Drafts(ctx context.Context, kind string) ([]models.ContentItem, error) {
	return c.userList(ctx, store.DraftKey(kind))
}

func (c *Catalog) upsert(ctx context.Context, key string, item models.ContentItem) error {
	items, err := c.userList(ctx, key)
	if err != nil {
		return err
	}
	c.Annotate(&item)
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return utils.NewAppError(utils.ErrInvalidInput, "encoding content failed", err)
	}
	if err := c.store.Set(ctx, key, encoded); err != nil {
		return utils.NewAppError(utils.ErrStoreUnavailable, "store write failed", err)
	}
	return nil
}

// AdjustVotes applies a vote delta to an item and persists the result
// as a user record, so the override wins the next merge. Votes never
// drop below zero.
func (c *Catalog) AdjustVotes(ctx context.Context, kind, id string, delta int) (models.ContentItem, error) {
	item, err := c.Find(ctx, kind, id)
	if err != nil {
		return models.ContentItem{}, err
	}
	item.Votes += delta
	if item.Votes < 0 {
		item.Votes = 0
	}
	item.UpdatedAt = c.now()
	if err := c.SaveUserItem(ctx, item); err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}
