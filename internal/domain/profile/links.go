package profile

import (
	"slices"
	"strings"
	"time"

	"linkvault/internal/domain/entity"
)

var schemePrefixes = []string{"http://", "https://", "mailto:", "tel:"}

// NormalizeURL prefixes https:// to a non-empty value that carries none of the
// http, https, mailto or tel schemes.
func NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	for _, prefix := range schemePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return raw
		}
	}

	return "https://" + raw
}

// Normalize rewrites every link and social URL of p in place.
func Normalize(p *entity.Profile) {
	for i := range p.Links {
		p.Links[i].URL = NormalizeURL(p.Links[i].URL)
	}

	for _, platform := range entity.SocialPlatforms {
		if url, ok := p.Social.Get(platform); ok {
			p.Social.Set(platform, NormalizeURL(url))
		}
	}
}

// SortActiveLinks returns the active links ordered by Order. Links sharing an
// Order keep their position in the document.
func SortActiveLinks(p *entity.Profile) []entity.Link {
	active := make([]entity.Link, 0, len(p.Links))
	for _, link := range p.Links {
		if link.IsActive {
			active = append(active, link)
		}
	}

	slices.SortStableFunc(active, func(a, b entity.Link) int {
		return a.Order - b.Order
	})

	return active
}

// VisibleLinks is SortActiveLinks without the links whose schedule excludes now.
func VisibleLinks(p *entity.Profile, now time.Time) []entity.Link {
	return slices.DeleteFunc(SortActiveLinks(p), func(link entity.Link) bool {
		return !scheduled(link.Schedule, now)
	})
}

func scheduled(s *entity.LinkSchedule, now time.Time) bool {
	if s == nil || !s.Enabled {
		return true
	}
	if !s.StartDate.IsZero() && now.Before(s.StartDate) {
		return false
	}
	if !s.EndDate.IsZero() && now.After(s.EndDate) {
		return false
	}

	return true
}
