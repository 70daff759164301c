package ctxutil

import "context"

type requestInfoKey struct{}

// RequestInfo identifies one inbound API call in logs and response headers.
type RequestInfo struct {
	RequestID string
	TraceID   string
	// Sampled is true when the trace id came from a recorded OTel span.
	Sampled bool
}

func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func RequestInfoFrom(ctx context.Context) (RequestInfo, bool) {
	if ctx == nil {
		return RequestInfo{}, false
	}
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// LogFields returns the non-empty identifiers as logger key/value pairs.
func (ri RequestInfo) LogFields() []interface{} {
	var kv []interface{}
	if ri.RequestID != "" {
		kv = append(kv, "request_id", ri.RequestID)
	}
	if ri.TraceID != "" {
		kv = append(kv, "trace_id", ri.TraceID)
	}
	return kv
}
