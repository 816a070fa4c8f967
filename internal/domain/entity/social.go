package entity

// SocialPlatform is one key of the fixed social link set.
type SocialPlatform string

const (
	SocialTwitter    SocialPlatform = "twitter"
	SocialInstagram  SocialPlatform = "instagram"
	SocialYouTube    SocialPlatform = "youtube"
	SocialTikTok     SocialPlatform = "tiktok"
	SocialLinkedIn   SocialPlatform = "linkedin"
	SocialGitHub     SocialPlatform = "github"
	SocialDiscord    SocialPlatform = "discord"
	SocialTelegram   SocialPlatform = "telegram"
	SocialSnapchat   SocialPlatform = "snapchat"
	SocialTwitch     SocialPlatform = "twitch"
	SocialPinterest  SocialPlatform = "pinterest"
	SocialFacebook   SocialPlatform = "facebook"
	SocialSpotify    SocialPlatform = "spotify"
	SocialSoundCloud SocialPlatform = "soundcloud"
	SocialEmail      SocialPlatform = "email"
	SocialPhone      SocialPlatform = "phone"
)

// SocialPlatforms lists every platform in display order.
var SocialPlatforms = []SocialPlatform{
	SocialTwitter, SocialInstagram, SocialYouTube, SocialTikTok,
	SocialLinkedIn, SocialGitHub, SocialDiscord, SocialTelegram,
	SocialSnapchat, SocialTwitch, SocialPinterest, SocialFacebook,
	SocialSpotify, SocialSoundCloud, SocialEmail, SocialPhone,
}

// SocialLinks maps each platform to an optional URL. Empty means unset.
type SocialLinks struct {
	Twitter    string `json:"twitter,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
	TikTok     string `json:"tiktok,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Discord    string `json:"discord,omitempty"`
	Telegram   string `json:"telegram,omitempty"`
	Snapchat   string `json:"snapchat,omitempty"`
	Twitch     string `json:"twitch,omitempty"`
	Pinterest  string `json:"pinterest,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Spotify    string `json:"spotify,omitempty"`
	SoundCloud string `json:"soundcloud,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// field returns a pointer to the URL stored for platform, or nil for an unknown key.
func (s *SocialLinks) field(platform SocialPlatform) *string {
	switch platform {
	case SocialTwitter:
		return &s.Twitter
	case SocialInstagram:
		return &s.Instagram
	case SocialYouTube:
		return &s.YouTube
	case SocialTikTok:
		return &s.TikTok
	case SocialLinkedIn:
		return &s.LinkedIn
	case SocialGitHub:
		return &s.GitHub
	case SocialDiscord:
		return &s.Discord
	case SocialTelegram:
		return &s.Telegram
	case SocialSnapchat:
		return &s.Snapchat
	case SocialTwitch:
		return &s.Twitch
	case SocialPinterest:
		return &s.Pinterest
	case SocialFacebook:
		return &s.Facebook
	case SocialSpotify:
		return &s.Spotify
	case SocialSoundCloud:
		return &s.SoundCloud
	case SocialEmail:
		return &s.Email
	case SocialPhone:
		return &s.Phone
	default:
		return nil
	}
}

// Get returns the URL for platform and whether it is set.
func (s SocialLinks) Get(platform SocialPlatform) (string, bool) {
	f := s.field(platform)
	if f == nil || *f == "" {
		return "", false
	}

	return *f, true
}

// Set stores url for platform. It reports false for a platform outside the fixed set.
func (s *SocialLinks) Set(platform SocialPlatform, url string) bool {
	f := s.field(platform)
	if f == nil {
		return false
	}
	*f = url

	return true
}

// SocialEntry is one configured platform URL.
type SocialEntry struct {
	Platform SocialPlatform `json:"platform"`
	URL      string         `json:"url"`
}

// Entries returns the configured platforms in display order.
func (s SocialLinks) Entries() []SocialEntry {
	entries := make([]SocialEntry, 0, len(SocialPlatforms))
	for _, platform := range SocialPlatforms {
		if url, ok := s.Get(platform); ok {
			entries = append(entries, SocialEntry{Platform: platform, URL: url})
		}
	}

	return entries
}
