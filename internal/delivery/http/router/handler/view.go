package handler

import (
	"time"

	"linkvault/internal/domain/contrast"
	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/profile"
)

// ProfileView is the rendered form of a profile document. Locked views carry
// only what the password gate shows.
type ProfileView struct {
	ContentAddress string          `json:"contentAddress"`
	RetrievalURL   string          `json:"retrievalUrl,omitempty"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	Avatar         string          `json:"avatar,omitempty"`
	Locked         bool            `json:"locked"`
	TextColor      string          `json:"textColor,omitempty"`
	Links          []entity.Link   `json:"links,omitempty"`
	Profile        *entity.Profile `json:"profile,omitempty"`
}

// lockedView leaves out the gateway URL, which would serve the document past the gate.
func lockedView(address string, doc *entity.Profile) *ProfileView {
	return &ProfileView{
		ContentAddress: address,
		Name:           doc.Name,
		Username:       doc.Username,
		Avatar:         doc.Avatar,
		Locked:         true,
	}
}

// newProfileView keeps the links visible at now, in display order, each with a
// readable text color. The password hash never leaves the server.
func newProfileView(address, retrievalURL string, doc *entity.Profile, now time.Time) *ProfileView {
	c := *doc
	c.Settings.Password = ""

	background := flatBackground(c.Theme)
	links := profile.VisibleLinks(&c, now)
	for i := range links {
		linkBackground := links[i].Style.BackgroundColor
		if linkBackground == "" {
			linkBackground = c.Theme.ButtonColor
		}
		if linkBackground == "" {
			linkBackground = background
		}
		linkText := links[i].Style.TextColor
		if linkText == "" {
			linkText = c.Theme.ButtonTextColor
		}
		links[i].Style.TextColor = contrast.Resolve(linkText, linkBackground)
	}

	return &ProfileView{
		ContentAddress: address,
		RetrievalURL:   retrievalURL,
		Name:           c.Name,
		Username:       c.Username,
		Avatar:         c.Avatar,
		TextColor:      contrast.Resolve(c.Theme.TextColor, background),
		Links:          links,
		Profile:        &c,
	}
}

// flatBackground picks the color text is checked against: the background color,
// or the first gradient stop of a gradient theme.
func flatBackground(theme entity.Theme) string {
	if theme.BackgroundType == entity.BackgroundGradient &&
		theme.BackgroundGradient != nil && len(theme.BackgroundGradient.Colors) > 0 {
		return theme.BackgroundGradient.Colors[0]
	}

	return theme.BackgroundColor
}
