package logs

import (
	"context"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies a unit of work in log records
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

// SpanOf returns the span in ctx, or empty
func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
