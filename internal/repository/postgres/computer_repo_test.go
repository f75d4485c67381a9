package postgres_test

import (
	"context"
	"testing"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository/postgres"
	"github.com/arjun/cybercafe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedComputers(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	require.NoError(t, postgres.SeedComputers(testDB.DB))

	computers, err := repos.Computer.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, computers, 3)
	assert.Equal(t, "PC-01", computers[0].Name)
	assert.Equal(t, domain.ComputerStatusAvailable, computers[0].Status)
	assert.InDelta(t, 35.0, computers[1].HourlyRate, 0.001)

	// Idempotent: a second boot does not duplicate the floor
	require.NoError(t, postgres.SeedComputers(testDB.DB))
	computers, err = repos.Computer.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, computers, 3)
}
