package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csheth/homescout/internal/config"
	"github.com/csheth/homescout/internal/history"
	"github.com/csheth/homescout/internal/predictor"
)

func TestAppendHistoryJobPersistsEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	entry := history.Entry{RequestID: "req-1", Price: 450000, Currency: "USD"}

	msg, err := appendHistoryJob(path, entry)(context.Background())
	require.NoError(t, err)
	saved, ok := msg.(historySavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	entries, err := history.Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "req-1", entries[0].RequestID)
}

func TestHealthProbeJobNeverErrors(t *testing.T) {
	client := predictor.New(config.Config{BaseURL: "http://127.0.0.1:1"})

	msg, err := healthProbeJob(client)(context.Background())
	require.NoError(t, err, "an unreachable backend must read as unhealthy, not as a job failure")
	result, ok := msg.(healthResultMsg)
	require.True(t, ok)
	require.False(t, result.healthy)
}

func TestJobBusIDsIncludeKind(t *testing.T) {
	bus := &jobBus{}
	require.Equal(t, "predict-1", bus.nextID(jobKindPredict))
	require.Equal(t, "health-2", bus.nextID(jobKindHealth))
}
