package impl

import (
	"reflect"
	"strconv"
	"strings"

	"linkvault/internal/domain/contrast"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

type templateSeed struct {
	id, name, description, icon, color string
	background                         entity.Theme
	links                              [][2]string // title, icon
}

var templateSeeds = []templateSeed{
	{
		id: "creator", name: "Content Creator", description: "Perfect for YouTubers and streamers", icon: "🎬", color: "#ec4899",
		background: entity.Theme{
			BackgroundType:     entity.BackgroundGradient,
			BackgroundColor:    "#fdf2f8",
			BackgroundGradient: &entity.Gradient{Type: "linear", Colors: []string{"#fdf2f8", "#fce7f3"}, Direction: "to bottom"},
			ButtonStyle:        entity.ButtonPill,
		},
		links: [][2]string{{"Latest Video", "🎬"}, {"YouTube Channel", "📺"}, {"Live on Twitch", "🎮"}},
	},
	{
		id: "business", name: "Business Professional", description: "For entrepreneurs and consultants", icon: "💼", color: "#3b82f6",
		background: entity.Theme{BackgroundType: entity.BackgroundColor, BackgroundColor: "#f8fafc", ButtonStyle: entity.ButtonSquare},
		links:      [][2]string{{"Company Website", "🌐"}, {"Book a Call", "📅"}, {"LinkedIn", "💼"}},
	},
	{
		id: "artist", name: "Artist & Designer", description: "Showcase your portfolio", icon: "🎨", color: "#8b5cf6",
		background: entity.Theme{
			BackgroundType:     entity.BackgroundGradient,
			BackgroundColor:    "#f5f3ff",
			BackgroundGradient: &entity.Gradient{Type: "radial", Colors: []string{"#f5f3ff", "#ede9fe"}},
			ButtonStyle:        entity.ButtonRounded,
		},
		links: [][2]string{{"Portfolio", "🖼️"}, {"Shop Prints", "🛍️"}, {"Instagram", "📸"}},
	},
	{
		id: "developer", name: "Developer", description: "For developers and makers", icon: "💻", color: "#10b981",
		background: entity.Theme{BackgroundType: entity.BackgroundColor, BackgroundColor: "#0f172a", ButtonStyle: entity.ButtonSquare},
		links:      [][2]string{{"GitHub", "💻"}, {"Blog", "✍️"}, {"Projects", "🚀"}},
	},
	{
		id: "musician", name: "Musician", description: "Share your music and tours", icon: "🎵", color: "#f59e0b",
		background: entity.Theme{BackgroundType: entity.BackgroundColor, BackgroundColor: "#1c1917", ButtonStyle: entity.ButtonPill},
		links:      [][2]string{{"Listen on Spotify", "🎧"}, {"Tour Dates", "🎤"}, {"Merch", "👕"}},
	},
	{
		id: "influencer", name: "Influencer", description: "Connect across all platforms", icon: "⭐", color: "#ef4444",
		background: entity.Theme{
			BackgroundType:     entity.BackgroundGradient,
			BackgroundColor:    "#fef2f2",
			BackgroundGradient: &entity.Gradient{Type: "linear", Colors: []string{"#fef2f2", "#fee2e2"}, Direction: "to bottom right"},
			ButtonStyle:        entity.ButtonPill,
		},
		links: [][2]string{{"Instagram", "📸"}, {"TikTok", "🎵"}, {"Brand Collaborations", "🤝"}},
	},
}

// templateService implements the TemplateUsecase interface.
type templateService struct {
	templates []entity.ProfileTemplate
}

// NewTemplateService is the constructor for templateService.
func NewTemplateService() usecase.TemplateUsecase {
	templates := make([]entity.ProfileTemplate, 0, len(templateSeeds))
	for _, seed := range templateSeeds {
		templates = append(templates, seed.build())
	}

	return &templateService{templates: templates}
}

func (s templateSeed) build() entity.ProfileTemplate {
	theme := entity.DefaultTheme()
	theme.BackgroundType = s.background.BackgroundType
	theme.BackgroundColor = s.background.BackgroundColor
	theme.BackgroundGradient = s.background.BackgroundGradient
	theme.ButtonStyle = s.background.ButtonStyle
	theme.ButtonColor = s.color
	theme.TextColor = contrast.Resolve(theme.TextColor, theme.BackgroundColor)
	theme.ButtonTextColor = contrast.Resolve("#ffffff", s.color)

	links := make([]entity.Link, 0, len(s.links))
	for i, l := range s.links {
		link := entity.NewLink(s.id+"-"+strconv.Itoa(i+1), l[0], l[1], i+1)
		link.Style.BackgroundColor = s.color
		link.Style.TextColor = theme.ButtonTextColor
		links = append(links, link)
	}

	return entity.ProfileTemplate{
		ID:           s.id,
		Name:         s.name,
		Description:  s.description,
		Category:     s.id,
		Icon:         s.icon,
		Color:        s.color,
		Theme:        theme,
		DefaultLinks: links,
	}
}

// List returns every template in display order.
func (srv *templateService) List() []entity.ProfileTemplate {
	out := make([]entity.ProfileTemplate, len(srv.templates))
	for i, t := range srv.templates {
		out[i] = cloneTemplate(t)
	}

	return out
}

// Get returns the template with id.
func (srv *templateService) Get(id string) (*entity.ProfileTemplate, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range srv.templates {
		if t.ID == id {
			c := cloneTemplate(t)

			return &c, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("unknown template"), "template %q", id)
}

// Apply seeds p with the template. An empty id leaves p unchanged.
func (srv *templateService) Apply(id string, p *entity.Profile) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}

	t, err := srv.Get(id)
	if err != nil {
		return err
	}

	if p.Theme.BackgroundType == "" || reflect.DeepEqual(p.Theme, entity.DefaultTheme()) {
		p.Theme = t.Theme
	}
	if linksUnset(p.Links) {
		p.Links = t.DefaultLinks
	}

	return nil
}

// linksUnset reports whether no link has a real destination yet.
func linksUnset(links []entity.Link) bool {
	for _, l := range links {
		if u := strings.TrimSpace(l.URL); u != "" && u != "https://" {
			return false
		}
	}

	return true
}

func cloneTemplate(t entity.ProfileTemplate) entity.ProfileTemplate {
	c := t
	if t.Theme.BackgroundGradient != nil {
		g := *t.Theme.BackgroundGradient
		g.Colors = append([]string(nil), g.Colors...)
		c.Theme.BackgroundGradient = &g
	}
	c.DefaultLinks = append([]entity.Link(nil), t.DefaultLinks...)

	return c
}
