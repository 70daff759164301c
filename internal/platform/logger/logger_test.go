package logger

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeKVs(t *testing.T) {
	uid := uuid.New()
	out := sanitizeKVs([]interface{}{
		"email", "someone@example.com",
		"notes", "call back Tuesday",
		"user_id", uid,
		"status", "done",
		"dangling",
	})
	if len(out) != 9 {
		t.Fatalf("expected 9 entries, got %d: %v", len(out), out)
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("email not redacted: %v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Fatalf("notes not redacted: %v", out[3])
	}
	hashed, ok := out[5].(string)
	if !ok || !strings.HasPrefix(hashed, "hash:") || strings.Contains(hashed, uid.String()) {
		t.Fatalf("user_id not hashed: %v", out[5])
	}
	if out[7] != "done" {
		t.Fatalf("status should pass through, got %v", out[7])
	}
	if out[8] != "dangling" {
		t.Fatalf("odd trailing key should be kept, got %v", out[8])
	}
}

func TestHashValueStable(t *testing.T) {
	a := hashValue("abc")
	b := hashValue("abc")
	if a != b {
		t.Fatalf("hash not stable: %s vs %s", a, b)
	}
	if hashValue("") != "" {
		t.Fatalf("empty value should hash to empty string")
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"test", "development", "production"} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.With("component", "test").Info("hello", "k", "v")
	}
}
