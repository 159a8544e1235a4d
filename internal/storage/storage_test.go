package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverSQLite},
		SQL:     config.SQLConfig{DSN: filepath.Join(t.TempDir(), "raffle.db")},
	}

	store, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer store.Close(ctx)

	assert.Equal(t, config.DriverSQLite, store.Driver)
	assert.True(t, store.Transactor.Atomic())
	require.NoError(t, store.Ping(ctx))

	require.NoError(t, store.Entrants.Create(ctx, &models.Entrant{ID: "e1", NationalID: "11111111111", SchemaVersion: models.CurrentSchemaVersion}))
	n, err := store.Entrants.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}})
	require.NoError(t, err)

	assert.False(t, store.Transactor.Atomic())
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "cassandra"}})
	assert.Error(t, err)
}
