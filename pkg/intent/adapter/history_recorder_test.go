package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
)

func TestHistoryRecorder_Record(t *testing.T) {
	repo := &memoryHistoryRepo{}
	r := NewHistoryRecorder(repo)
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, "s1", intent.Action{Kind: intent.ActionUpdateFile, Filename: "a.txt", Content: "x", Append: true}, true))
	require.NoError(t, r.Record(ctx, "s1", intent.Action{Kind: intent.ActionSendEmail, To: "a@b.com", Subject: "s", Body: "b"}, false))

	require.Len(t, repo.entries, 2)

	first := repo.entries[0]
	assert.Equal(t, "s1", first.SessionID)
	assert.Equal(t, "edit", first.CommandType)
	assert.Equal(t, history.ResultSuccess, first.Result)
	assert.Equal(t, map[string]interface{}{"filename": "a.txt", "content": "x", "append": true}, first.CommandData)

	second := repo.entries[1]
	assert.Equal(t, "email", second.CommandType)
	assert.Equal(t, history.ResultError, second.Result)
	assert.Equal(t, "b", second.CommandData["message"])
	assert.NotContains(t, second.CommandData, "filename")
}
