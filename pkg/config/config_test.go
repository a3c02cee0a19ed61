package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notifyhub")
	t.Setenv("PORT", "")
	t.Setenv("FIREBASE_CONFIG", "")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "")
	t.Setenv("SERVERLESS", "")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.Serverless {
		t.Error("expected serverless flag off")
	}
	if cfg.HasFirebase() {
		t.Error("expected no firebase credential")
	}
}

func TestLoadFirebaseFallbacks(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notifyhub")
	t.Setenv("FIREBASE_CONFIG", "")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "/etc/firebase/sa.json")
	t.Setenv("SERVERLESS", "1")

	cfg := Load()
	if !cfg.HasFirebase() {
		t.Error("expected credentials file to count as a firebase credential")
	}
	if !cfg.Serverless {
		t.Error("expected serverless flag on")
	}
}
