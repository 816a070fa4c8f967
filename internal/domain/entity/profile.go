// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"time"
)

// ProfileVersion is the schema version written into every document.
const ProfileVersion = "1.0"

// Profile is the unit of storage and sharing. Once persisted a profile is immutable;
// every edit is published as a new document with its own content address.
type Profile struct {
	Version       string        `json:"version"`
	Name          string        `json:"name"`
	Username      string        `json:"username"`
	Bio           string        `json:"bio"`
	Avatar        string        `json:"avatar,omitempty"` // data URI or content address of the image
	Links         []Link        `json:"links"`
	Theme         Theme         `json:"theme"`
	Customization Customization `json:"customization"`
	Social        SocialLinks   `json:"social"`
	Settings      Settings      `json:"settings"`
	Metadata      Metadata      `json:"metadata"`
}

// Link is a single entry of the link list.
type Link struct {
	ID          string        `json:"id"`    // Unique within the document.
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Description string        `json:"description,omitempty"`
	Icon        string        `json:"icon"`
	IsActive    bool          `json:"isActive"`
	Order       int           `json:"order"` // Display sort key; ties keep insertion order.
	Style       LinkStyle     `json:"style"`
	Animation   string        `json:"animation,omitempty"`
	Schedule    *LinkSchedule `json:"schedule,omitempty"`
	Analytics   LinkAnalytics `json:"analytics"`
}

// LinkStyle holds per-link colors and shape.
type LinkStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderColor     string `json:"borderColor,omitempty"`
	BorderWidth     int    `json:"borderWidth,omitempty"`
	BorderRadius    int    `json:"borderRadius"`
	Shadow          string `json:"shadow,omitempty"`
	Font            string `json:"font,omitempty"`
}

// LinkSchedule restricts when a link is shown. Zero times mean an open bound.
type LinkSchedule struct {
	Enabled   bool      `json:"enabled"`
	StartDate time.Time `json:"startDate,omitzero"`
	EndDate   time.Time `json:"endDate,omitzero"`
	Timezone  string    `json:"timezone,omitempty"`
}

// LinkAnalytics is the click counter embedded in a published document.
type LinkAnalytics struct {
	Clicks      int64 `json:"clicks"`
	LastClicked int64 `json:"lastClicked,omitempty"` // epoch millis
}

// BackgroundType enumerates theme background kinds.
type BackgroundType string

const (
	BackgroundColor    BackgroundType = "color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
	BackgroundVideo    BackgroundType = "video"
)

// ButtonStyle enumerates link button shapes.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSquare  ButtonStyle = "square"
	ButtonPill    ButtonStyle = "pill"
)

// Layout is the horizontal alignment hint.
type Layout string

const (
	LayoutCenter Layout = "center"
	LayoutLeft   Layout = "left"
	LayoutRight  Layout = "right"
)

// Spacing is the vertical rhythm hint.
type Spacing string

const (
	SpacingCompact Spacing = "compact"
	SpacingNormal  Spacing = "normal"
	SpacingRelaxed Spacing = "relaxed"
)

// Gradient describes a gradient background.
type Gradient struct {
	Type      string   `json:"type"` // linear | radial
	Colors    []string `json:"colors"`
	Direction string   `json:"direction,omitempty"`
}

// Theme is the page-wide appearance.
type Theme struct {
	BackgroundType     BackgroundType `json:"backgroundType"`
	BackgroundColor    string         `json:"backgroundColor,omitempty"`
	BackgroundGradient *Gradient      `json:"backgroundGradient,omitempty"`
	BackgroundImage    string         `json:"backgroundImage,omitempty"`
	BackgroundVideo    string         `json:"backgroundVideo,omitempty"`
	FontFamily         string         `json:"fontFamily"`
	TextColor          string         `json:"textColor"`
	ButtonStyle        ButtonStyle    `json:"buttonStyle"`
	ButtonColor        string         `json:"buttonColor"`
	ButtonTextColor    string         `json:"buttonTextColor"`
	ButtonBorderColor  string         `json:"buttonBorderColor,omitempty"`
	Layout             Layout         `json:"layout"`
	Spacing            Spacing        `json:"spacing"`
	Animations         bool           `json:"animations"`
	MusicURL           string         `json:"musicUrl,omitempty"`
}

// Customization holds advanced display and SEO options.
type Customization struct {
	CustomCSS             string `json:"customCSS,omitempty"`
	ShowProfileViews      bool   `json:"showProfileViews"`
	ShowVerificationBadge bool   `json:"showVerificationBadge"`
	EnableDownloadVCard   bool   `json:"enableDownloadVCard"`
	MetaTitle             string `json:"metaTitle,omitempty"`
	MetaDescription       string `json:"metaDescription,omitempty"`
	MetaImage             string `json:"metaImage,omitempty"`
}

// Settings holds visibility and access flags.
type Settings struct {
	IsPublic          bool   `json:"isPublic"`
	AllowSearch       bool   `json:"allowSearch"`
	EnableAnalytics   bool   `json:"enableAnalytics"`
	EnableComments    bool   `json:"enableComments"`
	ModerateComments  bool   `json:"moderateComments"`
	EnableSharing     bool   `json:"enableSharing"`
	EnableDownloads   bool   `json:"enableDownloads"`
	PasswordProtected bool   `json:"passwordProtected"`
	Password          string `json:"password,omitempty"` // bcrypt hash once published
	AgeRestricted     bool   `json:"ageRestricted"`
	MinimumAge        int    `json:"minimumAge,omitempty"`
}

// Metadata is stamped by the publisher on every save.
type Metadata struct {
	CreatedAt int64  `json:"createdAt"` // epoch millis
	UpdatedAt int64  `json:"updatedAt"` // epoch millis
	Creator   string `json:"creator"`   // wallet address
	Views     int64  `json:"views"`
	IsPublic  bool   `json:"isPublic"`
}

// NewProfile returns a profile prefilled with the authoring defaults.
func NewProfile(creator string, now time.Time) *Profile {
	millis := now.UnixMilli()

	return &Profile{
		Version: ProfileVersion,
		Links: []Link{
			NewLink(strconv.FormatInt(millis, 10), "My Website", "🌐", 1),
		},
		Theme: DefaultTheme(),
		Customization: Customization{
			ShowProfileViews: true,
		},
		Settings: Settings{
			IsPublic:        true,
			AllowSearch:     true,
			EnableAnalytics: true,
			EnableSharing:   true,
		},
		Metadata: Metadata{
			CreatedAt: millis,
			UpdatedAt: millis,
			Creator:   creator,
			IsPublic:  true,
		},
	}
}

// NewLink returns an active link with the default button style.
func NewLink(id, title, icon string, order int) Link {
	return Link{
		ID:       id,
		Title:    title,
		URL:      "https://",
		Icon:     icon,
		IsActive: true,
		Order:    order,
		Style: LinkStyle{
			BackgroundColor: "#39e09b",
			TextColor:       "#000000",
			BorderRadius:    12,
			Font:            "Inter",
		},
	}
}

// DefaultTheme is the theme of a freshly created profile.
func DefaultTheme() Theme {
	return Theme{
		BackgroundType:  BackgroundColor,
		BackgroundColor: "#ffffff",
		FontFamily:      "Inter",
		TextColor:       "#111827",
		ButtonStyle:     ButtonRounded,
		ButtonColor:     "#39e09b",
		ButtonTextColor: "#000000",
		Layout:          LayoutCenter,
		Spacing:         SpacingNormal,
		Animations:      true,
	}
}

// FindLink returns the link with the given id.
func (p *Profile) FindLink(id string) (Link, bool) {
	for _, link := range p.Links {
		if link.ID == id {
			return link, true
		}
	}

	return Link{}, false
}
