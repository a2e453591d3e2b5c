package config

import "testing"

// TestBackingSelection covers the rule that picks the remote document
// store: disable flag unset plus both credential values present.
func TestBackingSelection(t *testing.T) {
	tests := []struct {
		name    string
		disable string
		pass    string
		db      string
		want    bool
	}{
		// --- Remote selected ---
		{name: "both credentials present", pass: "secret", db: "uikitlab", want: true},

		// --- Memory selected ---
		{name: "no credentials", want: false},
		{name: "password only", pass: "secret", want: false},
		{name: "database only", db: "uikitlab", want: false},
		{name: "disabled despite credentials", disable: "1", pass: "secret", db: "uikitlab", want: false},
		{name: "disabled with word true", disable: "true", pass: "secret", db: "uikitlab", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PLAYGROUND_DISABLE_REMOTE", tt.disable)
			t.Setenv("POSTGRES_PASSWORD", tt.pass)
			t.Setenv("POSTGRES_DB", tt.db)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := cfg.UseRemote(); got != tt.want {
				t.Errorf("UseRemote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER",
		"POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.UseRemote() {
		t.Error("bare environment must select the in-memory backing")
	}
	if cfg.UseValkey() {
		t.Error("valkey should be off without VALKEY_HOST")
	}
	if cfg.UseStorage() {
		t.Error("storage should be off without S3 settings")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
