package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
	"github.com/bokyaa/portfolio-backend/internal/projects/store"
)

// ProjectService handles project-related business logic on top of the store.
type ProjectService struct {
	store *store.Store
}

// NewProjectService creates a new project service.
func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// Input carries the fields of the admin project form. Tags arrive as the
// raw comma-separated string the form holds.
type Input struct {
	Title       string
	Description string
	Images      []string
	Tags        string
	Link        string
	GithubURL   string
	Category    string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrTitleRequired
	}
	if len(in.Images) == 0 {
		return domain.ErrNoImages
	}
	if len(in.Images) > domain.MaxImages {
		return domain.ErrTooManyImages
	}
	return nil
}

func (in Input) record(id int64) domain.ProjectRecord {
	return domain.ProjectRecord{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Images:      in.Images,
		Tags:        domain.ParseTags(in.Tags),
		Link:        in.Link,
		GithubURL:   in.GithubURL,
		Category:    in.Category,
	}
}

// List returns the stored sequence. A corrupt store degrades to an empty
// list so the site still renders; the condition is only logged.
func (s *ProjectService) List(ctx context.Context) []domain.ProjectRecord {
	records, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("[warn] operation=list_projects error=%v", err)
		return []domain.ProjectRecord{}
	}
	return records
}

// Get looks up one record by its string-compared id.
func (s *ProjectService) Get(ctx context.Context, id string) (domain.ProjectRecord, error) {
	rec, err := s.store.Find(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Printf("[warn] operation=get_project id=%s error=%v", id, err)
		return domain.ProjectRecord{}, domain.ErrNotFound
	}
	return rec, err
}

// Create validates the form input, assigns a fresh id and appends the
// record to the store.
func (s *ProjectService) Create(ctx context.Context, in Input) (domain.ProjectRecord, error) {
	if err := in.validate(); err != nil {
		return domain.ProjectRecord{}, err
	}
	rec := in.record(domain.NewID())
	if _, err := s.store.Add(ctx, rec); err != nil {
		return domain.ProjectRecord{}, err
	}
	return rec, nil
}

// Update replaces every field of the matching record except its id.
func (s *ProjectService) Update(ctx context.Context, id int64, in Input) (domain.ProjectRecord, error) {
	if err := in.validate(); err != nil {
		return domain.ProjectRecord{}, err
	}
	rec := in.record(id)
	if _, err := s.store.Update(ctx, id, rec); err != nil {
		return domain.ProjectRecord{}, err
	}
	return rec, nil
}

// Delete removes the matching record. Deleting an unknown id is not an
// error.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	_, err := s.store.Remove(ctx, id)
	return err
}
