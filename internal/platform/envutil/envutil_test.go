package envutil

import (
	"reflect"
	"testing"
	"time"
)

func TestLookups(t *testing.T) {
	t.Setenv("ENVUTIL_STR", " value ")
	t.Setenv("ENVUTIL_INT", "42")
	t.Setenv("ENVUTIL_BAD_INT", "forty")
	t.Setenv("ENVUTIL_BOOL", "yes")
	t.Setenv("ENVUTIL_DUR", "1500ms")
	t.Setenv("ENVUTIL_LIST", "a, b,,c ")
	t.Setenv("ENVUTIL_FLOAT", "0.25")

	if got := String("ENVUTIL_STR", "x"); got != "value" {
		t.Fatalf("String: got %q", got)
	}
	if got := String("ENVUTIL_MISSING", "x"); got != "x" {
		t.Fatalf("String default: got %q", got)
	}
	if got := Int("ENVUTIL_INT", 1); got != 42 {
		t.Fatalf("Int: got %d", got)
	}
	if got := Int("ENVUTIL_BAD_INT", 7); got != 7 {
		t.Fatalf("Int fallback: got %d", got)
	}
	if !Bool("ENVUTIL_BOOL", false) {
		t.Fatalf("Bool: expected true")
	}
	if Bool("ENVUTIL_MISSING", false) {
		t.Fatalf("Bool default: expected false")
	}
	if got := Duration("ENVUTIL_DUR", time.Second); got != 1500*time.Millisecond {
		t.Fatalf("Duration: got %s", got)
	}
	if got := Float("ENVUTIL_FLOAT", 1); got != 0.25 {
		t.Fatalf("Float: got %v", got)
	}
	if got := List("ENVUTIL_LIST", nil); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("List: got %v", got)
	}
	if got := List("ENVUTIL_MISSING", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("List default: got %v", got)
	}
}
