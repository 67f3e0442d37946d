package domain

import (
	"strconv"
	"strings"
	"time"
)

// ProjectRecord is a single portfolio entry as persisted in the project list.
// It is intentionally storage-agnostic and used across store, service and HTTP layers.
type ProjectRecord struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	Category    string   `json:"category"`
}

// MaxImages caps the images sequence on the admin write path.
// Reads never enforce it.
const MaxImages = 5

// NewID returns a creation-time derived identifier. Uniqueness relies on
// millisecond resolution within a single deployment, matching the ids of
// records created before this backend existed.
func NewID() int64 {
	return time.Now().UnixMilli()
}

// IDString renders the record id the way public detail URLs carry it.
func (p ProjectRecord) IDString() string {
	return strconv.FormatInt(p.ID, 10)
}

// CoverImage returns the first image, or the given fallback when the
// record has none.
func (p ProjectRecord) CoverImage(fallback string) string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return fallback
}

// ParseTags derives the tags sequence from a comma-separated input:
// entries are trimmed and empties dropped. Duplicates are kept.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// IsEmbeddedImage reports whether an images entry is an inline payload
// rather than an external URL. The two are distinguished only by shape.
func IsEmbeddedImage(entry string) bool {
	return strings.HasPrefix(entry, "data:")
}
