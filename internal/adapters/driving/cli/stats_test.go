package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinbt/meinbt-cli/internal/adapters/driven/storage/memory"
)

func setupStatsTest(provider *memory.Provider) func() {
	oldConfig := configStore
	oldProvider := storeProvider
	oldResolver := inputResolver
	oldSink := eventSink

	configStore = newTestConfigStore()
	storeProvider = provider
	inputResolver = &mockResolver{}
	eventSink = noopSink{}

	return func() {
		configStore = oldConfig
		storeProvider = oldProvider
		inputResolver = oldResolver
		eventSink = oldSink
		rootCmd.SetArgs(nil)
	}
}

func TestStatsCmd_EmptyStore(t *testing.T) {
	cleanup := setupStatsTest(memory.NewProvider())
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "empty")
}

func TestStatsCmd_CountsPerCollection(t *testing.T) {
	provider := memory.NewProvider()
	ctx := context.Background()
	require.NoError(t, provider.Store().InsertMany(ctx, "mdb", []any{1, 2, 3}))
	require.NoError(t, provider.Store().InsertMany(ctx, "drucksachen", []any{1}))

	cleanup := setupStatsTest(provider)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "mdb")
	assert.Contains(t, buf.String(), "3 records")
	assert.Contains(t, buf.String(), "drucksachen")
	assert.Contains(t, buf.String(), "1 records")
}

func TestStatsCmd_RejectsArguments(t *testing.T) {
	cleanup := setupStatsTest(memory.NewProvider())
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"stats", "extra"})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
