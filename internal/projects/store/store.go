// Package store persists the portfolio project list as one JSON-encoded
// array under a single well-known key. Every operation is a whole-list
// read-modify-write; the backend behind the key is injectable.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// DefaultKey is the well-known key the admin console has always written to.
const DefaultKey = "admin-projects"

// Backend abstracts the medium holding the raw serialized list.
type Backend interface {
	// Load returns the raw value and whether it was present at all.
	Load(ctx context.Context) ([]byte, bool, error)
	// Save overwrites the raw value.
	Save(ctx context.Context, data []byte) error
}

// Store provides persistence operations for the project list.
type Store struct {
	backend Backend
}

// New creates a new project store on the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// rawRecord tolerates the legacy shape where a record carried a singular
// "image" field instead of the "images" sequence.
type rawRecord struct {
	domain.ProjectRecord
	LegacyImage string `json:"image,omitempty"`
}

// Load reads and decodes the full list. An absent value yields an empty
// list. A value that is not a JSON array of records yields ErrCorruptStore;
// callers are expected to degrade to an empty list rather than propagate,
// so the public pages still render.
func (s *Store) Load(ctx context.Context) ([]domain.ProjectRecord, error) {
	data, ok, err := s.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project list: %w", err)
	}
	if !ok {
		return []domain.ProjectRecord{}, nil
	}

	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}

	out := make([]domain.ProjectRecord, 0, len(raw))
	for _, r := range raw {
		rec := r.ProjectRecord
		if rec.Images == nil {
			// image -> images promotion for records created before the
			// multi-image form existed.
			if r.LegacyImage != "" {
				rec.Images = []string{r.LegacyImage}
			} else {
				rec.Images = []string{}
			}
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save serializes the full list and overwrites the prior value. A rejected
// write surfaces as ErrQuotaExceeded and must be reported to the admin as a
// non-fatal notification.
func (s *Store) Save(ctx context.Context, records []domain.ProjectRecord) error {
	if records == nil {
		records = []domain.ProjectRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal project list: %w", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
	}
	return nil
}

// Add appends a record (the caller supplies a freshly generated id) and
// saves. The updated list is returned only after a successful save, so a
// failed write leaves nothing half-committed.
func (s *Store) Add(ctx context.Context, rec domain.ProjectRecord) ([]domain.ProjectRecord, error) {
	records, err := s.Load(ctx)
	if err != nil {
		records = []domain.ProjectRecord{}
	}
	updated := append(records, rec)
	if err := s.Save(ctx, updated); err != nil {
		return records, err
	}
	return updated, nil
}

// Update replaces the record whose id matches, preserving the id. A
// missing id is a no-op, not an error.
func (s *Store) Update(ctx context.Context, id int64, patch domain.ProjectRecord) ([]domain.ProjectRecord, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := make([]domain.ProjectRecord, len(records))
	for i, rec := range records {
		if rec.ID == id {
			patch.ID = id
			updated[i] = patch
		} else {
			updated[i] = rec
		}
	}
	if err := s.Save(ctx, updated); err != nil {
		return records, err
	}
	return updated, nil
}

// Remove filters out the record whose id matches. Idempotent.
func (s *Store) Remove(ctx context.Context, id int64) ([]domain.ProjectRecord, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := make([]domain.ProjectRecord, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			updated = append(updated, rec)
		}
	}
	if err := s.Save(ctx, updated); err != nil {
		return records, err
	}
	return updated, nil
}

// Find looks up one record by its string-compared id.
func (s *Store) Find(ctx context.Context, id string) (domain.ProjectRecord, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return domain.ProjectRecord{}, err
	}
	for _, rec := range records {
		if rec.IDString() == id {
			return rec, nil
		}
	}
	return domain.ProjectRecord{}, domain.ErrNotFound
}
