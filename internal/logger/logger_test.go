package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn", true)

	Info("dropped")
	Warn("kept", "task_id", "t1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "t1", rec["task_id"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "info", false)

	assert.Same(t, Get(), FromContext(context.Background()))

	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With("user_id", "u1")
	ctx := NewContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
}
