package slug

import (
	"testing"
	"time"
)

// TestGenerate exercises the slug generator with typical names, special
// characters, unicode, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal names ---
		{
			name:  "simple two words",
			input: "Primary Button",
			want:  "primary-button",
		},
		{
			name:  "name with number",
			input: "Card Grid 3",
			want:  "card-grid-3",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "Alerts",
			want:  "alerts",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Buttons, Badges & Pills!",
			want:  "buttons-badges-pills",
		},
		{
			name:  "parentheses and brackets",
			input: "Modal (v2) [Beta]",
			want:  "modal-v2-beta",
		},
		{
			name:  "slashes",
			input: "Forms/Inputs",
			want:  "formsinputs",
		},
		{
			name:  "existing hyphens preserved",
			input: "dark-mode toggle",
			want:  "dark-mode-toggle",
		},

		// --- Unicode ---
		{
			name:  "accented letters stripped",
			input: "Café Menü",
			want:  "caf-men",
		},
		{
			name:  "emoji stripped",
			input: "Toast 🎉 Stack",
			want:  "toast-stack",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!!!",
			want:  "",
		},
		{
			name:  "surrounding whitespace",
			input: "   Hero Banner   ",
			want:  "hero-banner",
		},
		{
			name:  "consecutive spaces collapse",
			input: "too    many   spaces",
			want:  "too-many-spaces",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			input: "-wrapped-",
			want:  "wrapped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"alerts", "primary-button", "x", "comp-1700000000000"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "Has Upper", "under_score", "spaced out", "é"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

// TestComponentID verifies the slug → name → timestamp precedence.
func TestComponentID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	if got := ComponentID("My Slug", "Ignored", now); got != "my-slug" {
		t.Errorf("slug wins: got %q", got)
	}
	if got := ComponentID("", "Primary Button", now); got != "primary-button" {
		t.Errorf("name fallback: got %q", got)
	}
	if got := ComponentID("", "", now); got != "comp-1700000000000" {
		t.Errorf("timestamp synthesis: got %q", got)
	}
	if got := CategoryID("!!!", "???", now); got != "cat-1700000000000" {
		t.Errorf("category timestamp synthesis: got %q", got)
	}
}
