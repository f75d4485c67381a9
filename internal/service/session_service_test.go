package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository/postgres"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Start(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Computer)
	ctx := context.Background()

	tests := []struct {
		name          string
		status        domain.ComputerStatus
		rate          float64
		estimated     float64
		wantErr       error
		wantEstimated float64
	}{
		{
			name:          "start on available computer",
			status:        domain.ComputerStatusAvailable,
			rate:          30.0,
			estimated:     2.0,
			wantEstimated: 60.0,
		},
		{
			name:    "start on in-use computer",
			status:  domain.ComputerStatusInUse,
			rate:    30.0,
			wantErr: domain.ErrComputerUnavailable,
		},
		{
			name:    "start on computer in maintenance",
			status:  domain.ComputerStatusMaintenance,
			rate:    30.0,
			wantErr: domain.ErrComputerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
			computer := testutil.NewComputerBuilder().
				WithStatus(tt.status).
				WithHourlyRate(tt.rate).
				Build(t, testDB.DB)

			result, err := sessionService.Start(ctx, service.StartSessionInput{
				UserID:         user.ID,
				ComputerID:     computer.ID,
				EstimatedHours: tt.estimated,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// A failed start must not leave a session row behind
				assert.Zero(t, testutil.CountSessions(t, testDB.DB, computer.ID))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.Session.UserID)
			assert.True(t, result.Session.IsOpen())
			assert.InDelta(t, tt.wantEstimated, result.EstimatedCost, 0.001)
			testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusInUse)
		})
	}
}

func TestSessionService_Start_SecondStartLoses(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Computer)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	computer := testutil.NewComputerBuilder().Build(t, testDB.DB)

	_, err := sessionService.Start(ctx, service.StartSessionInput{UserID: user.ID, ComputerID: computer.ID})
	require.NoError(t, err)

	_, err = sessionService.Start(ctx, service.StartSessionInput{UserID: other.ID, ComputerID: computer.ID})
	assert.ErrorIs(t, err, domain.ErrComputerUnavailable)

	// Exactly one open session for the computer
	count, err := repos.Session.CountOpenByComputer(ctx, computer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSessionService_End(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Computer)
	ctx := context.Background()

	t.Run("90 minute session at 30/hr costs 45", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		computer := testutil.NewComputerBuilder().
			WithStatus(domain.ComputerStatusInUse).
			WithHourlyRate(30.0).
			Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().
			WithUser(user).
			WithComputer(computer).
			StartedAt(time.Now().Add(-90 * time.Minute)).
			Build(t, testDB.DB)

		closed, err := sessionService.End(ctx, user.ID, session.ID)
		require.NoError(t, err)

		require.NotNil(t, closed.EndTime)
		require.NotNil(t, closed.Duration)
		require.NotNil(t, closed.Cost)
		assert.InDelta(t, 1.5, *closed.Duration, 0.01)
		assert.InDelta(t, 45.0, *closed.Cost, 0.5)
		assert.InDelta(t, *closed.Duration*30.0, *closed.Cost, 0.001)
		testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusAvailable)
	})

	t.Run("duration is never negative", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		computer := testutil.NewComputerBuilder().
			WithStatus(domain.ComputerStatusInUse).
			Build(t, testDB.DB)
		// Start time in the future, e.g. after a clock adjustment
		session := testutil.NewSessionBuilder().
			WithUser(user).
			WithComputer(computer).
			StartedAt(time.Now().Add(10 * time.Minute)).
			Build(t, testDB.DB)

		closed, err := sessionService.End(ctx, user.ID, session.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, *closed.Duration, 0.0)
		assert.GreaterOrEqual(t, *closed.Cost, 0.0)
	})

	t.Run("already closed session", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().
			WithUser(user).
			StartedAt(time.Now().Add(-2 * time.Hour)).
			Closed(time.Now().Add(-time.Hour), 30.0).
			Build(t, testDB.DB)

		_, err := sessionService.End(ctx, user.ID, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionAlreadyClosed)
	})

	t.Run("session owned by another user", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		intruder, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().
			WithUser(owner).
			Build(t, testDB.DB)

		_, err := sessionService.End(ctx, intruder.ID, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		// Still open and billable by its owner
		reloaded, err := repos.Session.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.IsOpen())
	})

	t.Run("unknown session id", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		missing := testutil.NewSessionBuilder().WithUser(user).Build(t, testDB.DB)
		require.NoError(t, testDB.DB.Delete(&domain.Session{}, "id = ?", missing.ID).Error)

		_, err := sessionService.End(ctx, user.ID, missing.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSessionService_ListOpen(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Computer)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	computer := testutil.NewComputerBuilder().
		WithStatus(domain.ComputerStatusInUse).
		WithHourlyRate(40.0).
		Build(t, testDB.DB)
	testutil.NewSessionBuilder().
		WithUser(user).
		WithComputer(computer).
		StartedAt(time.Now().Add(-30 * time.Minute)).
		Build(t, testDB.DB)

	// Closed session and another user's session must not be listed
	testutil.NewSessionBuilder().
		WithUser(user).
		StartedAt(time.Now().Add(-3 * time.Hour)).
		Closed(time.Now().Add(-2*time.Hour), 30.0).
		Build(t, testDB.DB)
	testutil.NewSessionBuilder().
		WithUser(other).
		Build(t, testDB.DB)

	open, err := sessionService.ListOpen(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)

	assert.True(t, open[0].Session.IsOpen())
	assert.InDelta(t, 0.5, open[0].ElapsedHours, 0.01)
	assert.InDelta(t, 20.0, open[0].RunningCost, 0.5)

	// Live annotation is not persisted
	reloaded, err := repos.Session.GetByID(ctx, open[0].Session.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Duration)
	assert.Nil(t, reloaded.Cost)
}
