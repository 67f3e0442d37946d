package views

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

func records() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		{ID: 1, Title: "One", Images: []string{"one.png"}, Tags: []string{"a"}, Category: "Branding"},
		{ID: 2, Title: "Two", Images: []string{}, Tags: []string{}, Category: "Web Design"},
		{ID: 3, Title: "Three", Images: []string{"three.png", "extra.png"}, Tags: []string{}, Category: "Branding"},
		{ID: 4, Title: "Four", Images: []string{"four.png"}, Tags: []string{}, Category: "UI/UX"},
	}
}

func TestFeaturedTakesFirstThree(t *testing.T) {
	out := Featured(records())
	require.Len(t, out, 3)
	assert.Equal(t, "One", out[0].Title)
	assert.Equal(t, "Three", out[2].Title)

	// Cover is the first image, or the placeholder.
	assert.Equal(t, "one.png", out[0].Image)
	assert.Equal(t, PlaceholderImage, out[1].Image)
	assert.Equal(t, "three.png", out[2].Image)
}

func TestFeaturedEmptyStore(t *testing.T) {
	out := Featured(nil)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestListingFilterExactMatch(t *testing.T) {
	recs := records()

	branding := Listing(recs, "Branding")
	require.Len(t, branding, 2)
	assert.Equal(t, "One", branding[0].Title)
	assert.Equal(t, "Three", branding[1].Title)

	all := Listing(recs, CategoryAll)
	assert.Len(t, all, len(recs))

	none := Listing(recs, "branding") // case-sensitive
	assert.Empty(t, none)
}

func TestListingSynthesizesYear(t *testing.T) {
	out := Listing(records(), "")
	require.NotEmpty(t, out)
	year := strconv.Itoa(time.Now().Year())
	for _, item := range out {
		assert.Equal(t, year, item.Year)
		assert.False(t, item.Featured)
	}
}

func TestDetailFillsPresentationDefaults(t *testing.T) {
	rec := domain.ProjectRecord{
		ID:          1700000000000,
		Title:       "Neon Logo",
		Description: "short",
		Images:      []string{"a.png"},
		Tags:        []string{"x"},
		Category:    "Branding",
		Link:        "https://example.com",
	}

	d := Detail(rec)
	assert.Equal(t, "1700000000000", d.ID)
	assert.Contains(t, d.LongDescription, "short")
	assert.Greater(t, len(d.LongDescription), len(rec.Description))
	assert.Equal(t, "Client Name", d.Client)
	assert.Equal(t, "2-3 months", d.Duration)
	assert.Equal(t, "Lead Designer", d.Role)
	assert.NotEmpty(t, d.Tools)
	assert.Equal(t, "https://example.com", d.LiveURL)
	assert.Equal(t, "#", d.GithubURL)
}

func TestDetailPlaceholderImages(t *testing.T) {
	d := Detail(domain.ProjectRecord{ID: 1, Title: "Bare"})
	assert.Equal(t, []string{PlaceholderImage}, d.Images)
}

func TestCategoriesStartWithAll(t *testing.T) {
	require.NotEmpty(t, Categories)
	assert.Equal(t, CategoryAll, Categories[0])
}
