package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"empty", "", 5, ""},
		{"fits", "focus", 5, "focus"},
		{"cut", "organization", 5, "organ..."},
		{"zero width", "abc", 0, "..."},
		{"wide runes", "日本語テキスト", 4, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ada", "A"},
		{"ada lovelace", "AL"},
		{"Grace Brewster Hopper", "GH"},
		{"  élise  durand ", "ÉD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.in), "Initials(%q)", tt.in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Combined", Capitalize("combined"))
	assert.Equal(t, "ÉTé", Capitalize("éTé"))
	assert.Equal(t, "Already", Capitalize("Already"))
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"sam@example.com",
		"First.Last@Sub.Example.org",
		"a+tag@x.io",
		"user@[10.0.0.1]",
		" padded@example.com ",
	}
	invalid := []string{
		"",
		"plain",
		"no-at.example.com",
		"two@@example.com",
		"user@localhost",
		"user@example.c",
		"user name@example.com",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "March 7, 2025", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestAgo(t *testing.T) {
	now := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 hours ago", Ago(now.Add(-3*time.Hour), now))
	assert.Equal(t, "now", Ago(now, now))
	assert.Equal(t, "never", Ago(time.Time{}, now))
}
