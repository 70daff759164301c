package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-10-16", want: "2026-10-16"},
		{in: " 2026-02-01 ", want: "2026-02-01"},
		{in: "2026-10-16T08:30:00Z", want: "2026-10-16"},
		{in: "2026-10-16 00:00:00", want: "2026-10-16"},
		{in: "16/10/2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Fatalf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTodayUsesLocation(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	if got := Today(now, time.UTC).String(); got != "2026-10-16" {
		t.Fatalf("UTC today = %s", got)
	}
	if got := Today(now, tokyo).String(); got != "2026-10-17" {
		t.Fatalf("Tokyo today = %s", got)
	}
}

func TestAddDaysAndWeekday(t *testing.T) {
	d := New(2026, 3, 1)
	if got := d.AddDays(-1).String(); got != "2026-02-28" {
		t.Fatalf("AddDays(-1) = %s", got)
	}
	if d.Weekday() != time.Sunday {
		t.Fatalf("2026-03-01 should be a Sunday, got %s", d.Weekday())
	}
	if !d.AddDays(-1).Before(d) || !d.After(d.AddDays(-1)) || !d.Equal(New(2026, 3, 1)) {
		t.Fatalf("comparison helpers disagree")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Day  Date  `json:"day"`
		Opt  *Date `json:"opt"`
		Zero Date  `json:"zero"`
	}
	raw, err := json.Marshal(payload{Day: New(2026, 10, 16)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"day":"2026-10-16","opt":null,"zero":null}` {
		t.Fatalf("unexpected json: %s", raw)
	}
	var back payload
	if err := json.Unmarshal([]byte(`{"day":"2026-01-02","opt":"2026-01-03"}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Day.String() != "2026-01-02" || back.Opt == nil || back.Opt.String() != "2026-01-03" {
		t.Fatalf("unexpected decode: %+v", back)
	}
	if err := json.Unmarshal([]byte(`{"day":"tomorrow"}`), &back); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestScanValue(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)); err != nil || d.String() != "2026-05-04" {
		t.Fatalf("scan time: %v %s", err, d)
	}
	if err := d.Scan("2026-05-05"); err != nil || d.String() != "2026-05-05" {
		t.Fatalf("scan string: %v %s", err, d)
	}
	if err := d.Scan([]byte("2026-05-06")); err != nil || d.String() != "2026-05-06" {
		t.Fatalf("scan bytes: %v %s", err, d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
	v, err := New(2026, 5, 7).Value()
	if err != nil || v != "2026-05-07" {
		t.Fatalf("Value = %v, %v", v, err)
	}
	if v, _ := (Date{}).Value(); v != nil {
		t.Fatalf("zero Value should be nil, got %v", v)
	}
}
