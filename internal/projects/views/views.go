// Package views computes the page-specific projections the public site
// renders. Each projection takes an independent snapshot of the stored
// list; none of them write back.
package views

import (
	"strconv"
	"time"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// PlaceholderImage is shown for records without any image of their own.
const PlaceholderImage = "/placeholder.svg"

// CategoryAll is the listing filter wildcard.
const CategoryAll = "All"

// Categories is the fixed filter list the projects page offers.
var Categories = []string{CategoryAll, "Branding", "Web Design", "Digital Art", "Motion Graphics", "UI/UX"}

// FeaturedProject is the home-page shape: a record trimmed to its cover.
type FeaturedProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

// ListingItem is the lighter shape the projects page renders. The store
// does not persist a year, so one is synthesized from the clock.
type ListingItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Year        string   `json:"year"`
	Featured    bool     `json:"featured"`
}

// ProjectDetail is the detail-page shape. Client, duration, role and tools
// are presentation defaults, not stored data.
type ProjectDetail struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Images          []string `json:"images"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	Year            string   `json:"year"`
	Client          string   `json:"client"`
	Duration        string   `json:"duration"`
	Role            string   `json:"role"`
	Tools           []string `json:"tools"`
	LiveURL         string   `json:"liveUrl"`
	GithubURL       string   `json:"githubUrl"`
}

const detailFiller = "\n\nThis project showcases innovative design thinking and cutting-edge technology implementation. Every detail has been carefully crafted to deliver an exceptional user experience that exceeds client expectations."

// Featured returns the first three records for the home page.
func Featured(records []domain.ProjectRecord) []FeaturedProject {
	n := len(records)
	if n > 3 {
		n = 3
	}
	out := make([]FeaturedProject, 0, n)
	for _, rec := range records[:n] {
		out = append(out, FeaturedProject{
			ID:          rec.IDString(),
			Title:       rec.Title,
			Description: rec.Description,
			Image:       rec.CoverImage(PlaceholderImage),
			Tags:        rec.Tags,
			Category:    rec.Category,
		})
	}
	return out
}

// Listing maps the full sequence into listing items, optionally filtered by
// exact category match. CategoryAll (or an empty category) returns every
// record.
func Listing(records []domain.ProjectRecord, category string) []ListingItem {
	year := strconv.Itoa(time.Now().Year())
	out := make([]ListingItem, 0, len(records))
	for _, rec := range records {
		if category != "" && category != CategoryAll && rec.Category != category {
			continue
		}
		out = append(out, ListingItem{
			ID:          rec.IDString(),
			Title:       rec.Title,
			Description: rec.Description,
			Image:       rec.CoverImage(PlaceholderImage),
			Tags:        rec.Tags,
			Category:    rec.Category,
			Year:        year,
			Featured:    false,
		})
	}
	return out
}

// Detail expands one record into the detail-page shape, filling in the
// static presentation metadata the store does not persist.
func Detail(rec domain.ProjectRecord) ProjectDetail {
	images := rec.Images
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	return ProjectDetail{
		ID:              rec.IDString(),
		Title:           rec.Title,
		Description:     rec.Description,
		LongDescription: rec.Description + detailFiller,
		Images:          images,
		Tags:            rec.Tags,
		Category:        rec.Category,
		Year:            strconv.Itoa(time.Now().Year()),
		Client:          "Client Name",
		Duration:        "2-3 months",
		Role:            "Lead Designer",
		Tools:           []string{"Adobe Creative Suite", "Figma", "Modern Web Technologies"},
		LiveURL:         orHash(rec.Link),
		GithubURL:       orHash(rec.GithubURL),
	}
}

func orHash(url string) string {
	if url == "" {
		return "#"
	}
	return url
}
