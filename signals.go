package conform

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for validation events. Emission happens only at the external
// boundary (Validate, Decode), never inside combinator recursion.
var (
	SignalValidateStart    = capitan.NewSignal("conform.validate.start", "Validation beginning")
	SignalValidateComplete = capitan.NewSignal("conform.validate.complete", "Validation finished")
	SignalDecodeComplete   = capitan.NewSignal("conform.decode.complete", "Decode and validation finished")
)

// Keys for typed event data.
var (
	KeyKind        = capitan.NewStringKey("kind")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitValidateStart emits an event when validation begins.
func emitValidateStart(ctx context.Context, kind Kind) {
	capitan.Emit(ctx, SignalValidateStart,
		KeyKind.Field(kind.String()),
	)
}

// emitValidateComplete emits an event when validation finishes.
func emitValidateComplete(ctx context.Context, kind Kind, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(kind.String()),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalValidateComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalValidateComplete, fields...)
	}
}

// emitDecodeComplete emits an event when a decode-and-validate finishes.
func emitDecodeComplete(ctx context.Context, contentType string, kind Kind, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyKind.Field(kind.String()),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
