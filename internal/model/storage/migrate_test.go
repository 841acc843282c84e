package storage

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnSchemaSource_ShouldCreateChatsAndPopupLog(t *testing.T) {
	src, err := schemaSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS chats")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS popup_events")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	assert.NoError(t, down.Close())
}
