package entity

// ProfileTemplate is a named preset that seeds the theme and links of a new profile.
type ProfileTemplate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Theme        Theme  `json:"theme"`
	DefaultLinks []Link `json:"defaultLinks"`
}
