package redis

import "testing"

func TestKeyBuilderPrefix(t *testing.T) {
	tests := []struct {
		environment string
		want        string
	}{
		{"production", "prod"},
		{"development", "staging"},
		{"staging", "staging"},
		{"", "prod"},
	}

	for _, tt := range tests {
		kb := NewKeyBuilder(tt.environment)
		if got := kb.GetPrefix(); got != tt.want {
			t.Errorf("NewKeyBuilder(%q).GetPrefix() = %q, want %q", tt.environment, got, tt.want)
		}
	}
}

func TestKeyRateLimit(t *testing.T) {
	kb := NewKeyBuilder("production")
	got := kb.KeyRateLimit("203.0.113.7")
	want := "prod:ratelimit:contact:203.0.113.7"
	if got != want {
		t.Errorf("KeyRateLimit() = %q, want %q", got, want)
	}
}
