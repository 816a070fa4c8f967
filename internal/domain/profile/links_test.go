package profile

import (
	"testing"
	"time"

	"linkvault/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"example.com", "https://example.com"},
		{"mailto:a@b.com", "mailto:a@b.com"},
		{"tel:+123456", "tel:+123456"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/x", "https://example.com/x"},
		{"HTTPS://EXAMPLE.COM", "HTTPS://EXAMPLE.COM"},
		{"", ""},
		{"ftp://files.example.com", "https://ftp://files.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	p := &entity.Profile{
		Links: []entity.Link{
			{ID: "1", URL: "example.com"},
			{ID: "2", URL: "mailto:me@example.com"},
			{ID: "3"},
		},
		Social: entity.SocialLinks{
			GitHub:  "github.com/alice",
			Twitter: "https://x.com/alice",
		},
	}

	Normalize(p)

	assert.Equal(t, "https://example.com", p.Links[0].URL)
	assert.Equal(t, "mailto:me@example.com", p.Links[1].URL)
	assert.Empty(t, p.Links[2].URL)
	assert.Equal(t, "https://github.com/alice", p.Social.GitHub)
	assert.Equal(t, "https://x.com/alice", p.Social.Twitter)
	assert.Empty(t, p.Social.YouTube)
}

func linkIDs(links []entity.Link) []string {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}

	return ids
}

func TestSortActiveLinks(t *testing.T) {
	t.Run("ascending order", func(t *testing.T) {
		p := &entity.Profile{Links: []entity.Link{
			{ID: "c", Order: 3, IsActive: true},
			{ID: "a", Order: 1, IsActive: true},
			{ID: "b", Order: 2, IsActive: true},
		}}
		assert.Equal(t, []string{"a", "b", "c"}, linkIDs(SortActiveLinks(p)))
	})

	t.Run("inactive excluded and ties keep insertion order", func(t *testing.T) {
		p := &entity.Profile{Links: []entity.Link{
			{ID: "x", Order: 2, IsActive: true},
			{ID: "hidden", Order: 0, IsActive: false},
			{ID: "y", Order: 2, IsActive: true},
			{ID: "first", Order: -1, IsActive: true},
			{ID: "z", Order: 2, IsActive: true},
		}}
		assert.Equal(t, []string{"first", "x", "y", "z"}, linkIDs(SortActiveLinks(p)))
	})

	t.Run("does not reorder the document", func(t *testing.T) {
		p := &entity.Profile{Links: []entity.Link{
			{ID: "b", Order: 2, IsActive: true},
			{ID: "a", Order: 1, IsActive: true},
		}}
		SortActiveLinks(p)
		assert.Equal(t, []string{"b", "a"}, linkIDs(p.Links))
	})

	t.Run("no links", func(t *testing.T) {
		assert.Empty(t, SortActiveLinks(&entity.Profile{}))
	})
}

func TestVisibleLinks(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &entity.Profile{Links: []entity.Link{
		{ID: "always", Order: 1, IsActive: true},
		{ID: "current", Order: 2, IsActive: true, Schedule: &entity.LinkSchedule{
			Enabled:   true,
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(time.Hour),
		}},
		{ID: "future", Order: 3, IsActive: true, Schedule: &entity.LinkSchedule{
			Enabled:   true,
			StartDate: now.Add(time.Hour),
		}},
		{ID: "expired", Order: 4, IsActive: true, Schedule: &entity.LinkSchedule{
			Enabled: true,
			EndDate: now.Add(-time.Hour),
		}},
		{ID: "disabled-schedule", Order: 5, IsActive: true, Schedule: &entity.LinkSchedule{
			Enabled: false,
			EndDate: now.Add(-time.Hour),
		}},
	}}

	assert.Equal(t, []string{"always", "current", "disabled-schedule"}, linkIDs(VisibleLinks(p, now)))
}
