package profile

import (
	"testing"
	"time"

	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() *entity.Profile {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Profile{
		Version:  entity.ProfileVersion,
		Name:     "Alice",
		Username: "alice",
		Bio:      "builder",
		Avatar:   "data:image/png;base64,AAAA",
		Links: []entity.Link{
			{
				ID: "l1", Title: "Site", URL: "https://alice.dev", Description: "home", Icon: "🌐",
				IsActive: true, Order: 1, Animation: "pulse",
				Style: entity.LinkStyle{
					BackgroundColor: "#000", TextColor: "#fff", BorderColor: "#111",
					BorderWidth: 2, BorderRadius: 8, Shadow: "sm", Font: "Inter",
				},
				Schedule:  &entity.LinkSchedule{Enabled: true, StartDate: start, EndDate: start.AddDate(0, 1, 0), Timezone: "UTC"},
				Analytics: entity.LinkAnalytics{Clicks: 4, LastClicked: 1700000000000},
			},
			{ID: "l2", Title: "Blog", URL: "https://blog.alice.dev", Order: 2},
		},
		Theme: entity.Theme{
			BackgroundType:     entity.BackgroundGradient,
			BackgroundColor:    "#ffffff",
			BackgroundGradient: &entity.Gradient{Type: "linear", Colors: []string{"#fff", "#000"}, Direction: "to bottom"},
			BackgroundImage:    "img",
			BackgroundVideo:    "vid",
			FontFamily:         "Inter",
			TextColor:          "#111827",
			ButtonStyle:        entity.ButtonPill,
			ButtonColor:        "#39e09b",
			ButtonTextColor:    "#000000",
			ButtonBorderColor:  "#222",
			Layout:             entity.LayoutLeft,
			Spacing:            entity.SpacingRelaxed,
			Animations:         true,
			MusicURL:           "https://music.example.com",
		},
		Customization: entity.Customization{
			CustomCSS: "a{}", ShowProfileViews: true, ShowVerificationBadge: true, EnableDownloadVCard: true,
			MetaTitle: "t", MetaDescription: "d", MetaImage: "i",
		},
		Social: entity.SocialLinks{GitHub: "https://github.com/alice", Email: "mailto:alice@example.com"},
		Settings: entity.Settings{
			IsPublic: true, AllowSearch: true, EnableAnalytics: true, EnableComments: true,
			ModerateComments: true, EnableSharing: true, EnableDownloads: true,
			PasswordProtected: true, Password: "$2a$10$hash", AgeRestricted: true, MinimumAge: 18,
		},
		Metadata: entity.Metadata{CreatedAt: 1, UpdatedAt: 2, Creator: "0xabc", Views: 3, IsPublic: true},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	profiles := map[string]*entity.Profile{
		"full":    fullProfile(),
		"default": entity.NewProfile("0xabc", time.UnixMilli(1700000000000)),
		"empty":   {},
	}

	for name, original := range profiles {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(original)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}
}

func TestEncode_WireNames(t *testing.T) {
	data, err := Encode(fullProfile())
	require.NoError(t, err)

	for _, key := range []string{`"isActive"`, `"backgroundType"`, `"passwordProtected"`, `"createdAt"`, `"social"`, `"lastClicked"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestMappingCodec(t *testing.T) {
	m := &entity.UsernameMapping{Username: "alice", ContentAddress: "tx-1", Timestamp: 42}

	data, err := EncodeMapping(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","transactionId":"tx-1","timestamp":42}`, string(data))

	decoded, err := DecodeMapping(data)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)

	_, err = DecodeMapping([]byte(`{"username":"alice"}`))
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	app := AppInfo{Name: "IrysLinkTree", Version: "1.0.0", ProfileType: "linktree"}
	p := fullProfile()

	tags := DocumentTags(app, p)
	require.Len(t, tags, 9)
	expected := map[string]string{
		constants.TagContentType: "application/json",
		constants.TagAppName:     "IrysLinkTree",
		constants.TagAppVersion:  "1.0.0",
		constants.TagProfileType: "linktree",
		constants.TagCreator:     "0xabc",
		constants.TagName:        "Alice",
		constants.TagUsername:    "alice",
		constants.TagPublic:      "true",
		constants.TagAllowSearch: "true",
	}
	for name, value := range expected {
		got, ok := tags.Get(name)
		assert.True(t, ok, name)
		assert.Equal(t, value, got, name)
	}

	mapping := MappingTags(app, "alice")
	require.Len(t, mapping, 4)
	mt, _ := mapping.Get(constants.TagMappingType)
	assert.Equal(t, "username-to-transaction", mt)

	filter := MappingFilter(app, "alice")
	_, hasContentType := filter.Get(constants.TagContentType)
	assert.False(t, hasContentType)
	assert.Len(t, filter, 3)
}
