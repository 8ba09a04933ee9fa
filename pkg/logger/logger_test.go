package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetDocumentID(ctx))

	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithDocumentID(ctx, "DOC123")
	ctx = WithJobID(ctx, "job-9")

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "DOC123", GetDocumentID(ctx))
	assert.Equal(t, "job-9", GetJobID(ctx))
}

func TestBuildFields_IncludesContextAndPairs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{zap: zap.New(core)}

	ctx := WithDocumentID(WithTraceID(context.Background(), "trace-1"), "DOC123")
	l.Info(ctx, "scored", "base_score", 30.0, 42, "ignored-non-string-key", "dangling")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "trace-1", fields["trace_id"])
		assert.Equal(t, "DOC123", fields["document_id"])
		assert.Equal(t, 30.0, fields["base_score"])
		assert.Len(t, fields, 3)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
