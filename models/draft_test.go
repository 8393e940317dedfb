package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftEmpty(t *testing.T) {
	assert.True(t, Draft{}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(`null`)}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(`{}`)}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(`[]`)}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(` `)}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(`{ }`)}.Empty())
	assert.True(t, Draft{Data: json.RawMessage(" {\n}\t")}.Empty())
	assert.False(t, Draft{Data: json.RawMessage(`{"name":"Amit"}`)}.Empty())
	assert.False(t, Draft{Data: json.RawMessage(`0`)}.Empty())
}

func TestDraftKey(t *testing.T) {
	assert.Equal(t, "lead_42", DraftKey("lead", "42"))
}

func TestQueuedOperationTerminal(t *testing.T) {
	assert.False(t, QueuedOperation{Status: StatusPending}.Terminal())
	assert.True(t, QueuedOperation{Status: StatusCompleted}.Terminal())
	assert.True(t, QueuedOperation{Status: StatusFailed}.Terminal())
}

func TestValidResolution(t *testing.T) {
	assert.True(t, ValidResolution(ResolutionUseOffline))
	assert.True(t, ValidResolution(ResolutionUseServer))
	assert.False(t, ValidResolution("merge"))
	assert.False(t, ValidResolution(""))
}
