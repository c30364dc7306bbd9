package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "protocol.json")
	require.NoError(t, writeSchema(out, buildSchema()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Night Shift Protocol", doc["title"])
	assert.Contains(t, string(data), "ServerResponse")
	assert.Contains(t, string(data), "ClientCommand")

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
