package i18n

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/gamification"
)

func TestDefaultBundle_CoversEveryBadge(t *testing.T) {
	bundle := Default()
	assert.Equal(t, []string{"en", "ja"}, bundle.Locales())

	for _, locale := range bundle.Locales() {
		for _, id := range gamification.Catalog {
			for _, field := range []string{"name", "description"} {
				_, ok := bundle.locales[locale][BadgeKey(id, field)]
				assert.True(t, ok, "locale %s misses %s", locale, BadgeKey(id, field))
			}
		}
	}
}

func TestBundleMessage_FallsBackToBase(t *testing.T) {
	bundle := &Bundle{locales: map[string]map[string]string{
		"en": {"greeting": "hello"},
		"ja": {},
	}}

	got, ok := bundle.Message("ja", "greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", got)

	_, ok = bundle.Message("ja", "missing")
	assert.False(t, ok)
}

func TestLoadFromFS_Validation(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name:    "no files",
			files:   fstest.MapFS{},
			wantErr: "no catalog files found",
		},
		{
			name: "locale mismatch",
			files: fstest.MapFS{
				"locales/en/badges.yaml": {Data: []byte("locale: ja\nnamespace: badges\nmessages:\n  a: b\n")},
			},
			wantErr: "must match path locale",
		},
		{
			name: "namespace mismatch",
			files: fstest.MapFS{
				"locales/en/badges.yaml": {Data: []byte("locale: en\nnamespace: other\nmessages:\n  a: b\n")},
			},
			wantErr: "must match filename",
		},
		{
			name: "missing base locale",
			files: fstest.MapFS{
				"locales/ja/badges.yaml": {Data: []byte("locale: ja\nnamespace: badges\nmessages:\n  a: b\n")},
			},
			wantErr: "base locale en",
		},
		{
			name: "duplicate key across namespaces",
			files: fstest.MapFS{
				"locales/en/a.yaml": {Data: []byte("locale: en\nnamespace: a\nmessages:\n  k: one\n")},
				"locales/en/b.yaml": {Data: []byte("locale: en\nnamespace: b\nmessages:\n  k: two\n")},
			},
			wantErr: "duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.files)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		input  string
		want   language.Tag
		wantOK bool
	}{
		{"ja", language.Japanese, true},
		{"ja-JP", language.Japanese, true},
		{"en-GB", language.English, true},
		{"fr", language.English, true},
		{"", language.English, false},
		{"not a tag!", language.English, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTag(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	assert.Equal(t, language.Japanese, ParseAcceptLanguage("ja-JP,ja;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, ParseAcceptLanguage("en-US,en;q=0.9"))
	assert.Equal(t, language.English, ParseAcceptLanguage(""))
}

func TestLocalizeBadges(t *testing.T) {
	unlocked := time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)
	meta := gamification.Meta(domain.BadgeFirstPomodoro)
	badges := []domain.Badge{{
		Description: meta.Description,
		Icon:        meta.Icon,
		ID:          domain.BadgeFirstPomodoro,
		Name:        meta.Name,
		UnlockedAt:  unlocked,
	}}

	ja := LocalizeBadges(badges, language.Japanese)
	require.Len(t, ja, 1)
	assert.Equal(t, "初めてのポモドーロ", ja[0].Name)
	assert.Equal(t, "最初のポモドーロを完了しました", ja[0].Description)
	assert.Equal(t, meta.Icon, ja[0].Icon)
	assert.Equal(t, unlocked, ja[0].UnlockedAt)

	en := LocalizeBadges(badges, language.English)
	assert.Equal(t, meta.Name, en[0].Name)
	assert.Equal(t, meta.Description, en[0].Description)

	// input is left untouched
	assert.Equal(t, meta.Name, badges[0].Name)
}

func TestLocalizeBadges_UnknownBadgeKeepsMetadata(t *testing.T) {
	badges := []domain.Badge{{ID: "custom", Name: "Custom"}}
	got := LocalizeBadges(badges, language.Japanese)
	assert.Equal(t, "Custom", got[0].Name)
}
