package ctxutil

import (
	"context"
	"testing"
)

func TestRequestInfoRoundTrip(t *testing.T) {
	if _, ok := RequestInfoFrom(context.Background()); ok {
		t.Fatalf("empty context should carry no request info")
	}
	ctx := WithRequestInfo(context.Background(), RequestInfo{RequestID: "r1", TraceID: "t1"})
	info, ok := RequestInfoFrom(ctx)
	if !ok || info.RequestID != "r1" || info.TraceID != "t1" {
		t.Fatalf("got %#v, %v", info, ok)
	}
}

func TestLogFieldsSkipsEmpty(t *testing.T) {
	kv := RequestInfo{TraceID: "t1"}.LogFields()
	if len(kv) != 2 || kv[0] != "trace_id" || kv[1] != "t1" {
		t.Fatalf("LogFields = %v", kv)
	}
	if kv := (RequestInfo{}).LogFields(); len(kv) != 0 {
		t.Fatalf("expected no fields, got %v", kv)
	}
}
