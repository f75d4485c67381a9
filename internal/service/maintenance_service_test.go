package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository/postgres"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_Schedule(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	maintenanceService := service.NewMaintenanceService(repos.Maintenance, repos.Computer)
	ctx := context.Background()

	t.Run("schedules on available computer", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().Build(t, testDB.DB)

		log, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
			ComputerID:     computer.ID,
			Type:           "Hardware Repair",
			Description:    "Replace noisy fan",
			Technician:     "Ravi",
			EstimatedHours: 2.0,
			Priority:       domain.PriorityHigh,
		})
		require.NoError(t, err)

		assert.Equal(t, "Hardware Repair: Replace noisy fan", log.Description)
		assert.Equal(t, "Ravi", log.Technician)
		assert.False(t, log.MaintenanceDate.IsZero())

		var details domain.MaintenanceDetails
		require.NoError(t, json.Unmarshal(log.Details, &details))
		assert.Equal(t, "Hardware Repair", details.Type)
		assert.Equal(t, domain.PriorityHigh, details.Priority)
		assert.InDelta(t, 2.0, details.EstimatedHours, 0.001)

		testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusMaintenance)

		var reloaded domain.Computer
		require.NoError(t, testDB.DB.First(&reloaded, "id = ?", computer.ID).Error)
		require.NotNil(t, reloaded.LastMaintenance)

		// Exactly one log row appended
		var count int64
		require.NoError(t, testDB.DB.Model(&domain.MaintenanceLog{}).
			Where("computer_id = ?", computer.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("rejects computer with open session", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().
			WithStatus(domain.ComputerStatusInUse).
			Build(t, testDB.DB)

		_, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
			ComputerID: computer.ID,
			Type:       "Routine Checkup",
			Technician: "Ravi",
		})
		assert.ErrorIs(t, err, domain.ErrComputerInUse)
		testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusInUse)
	})

	t.Run("re-log while already in maintenance", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().
			WithStatus(domain.ComputerStatusMaintenance).
			Build(t, testDB.DB)

		_, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
			ComputerID: computer.ID,
			Type:       "Software Update",
			Technician: "Mina",
		})
		require.NoError(t, err)
		testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusMaintenance)
	})

	t.Run("unknown computer", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().Build(t, testDB.DB)
		require.NoError(t, testDB.DB.Delete(&domain.Computer{}, "id = ?", computer.ID).Error)

		_, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
			ComputerID: computer.ID,
			Type:       "Routine Checkup",
			Technician: "Ravi",
		})
		assert.ErrorIs(t, err, domain.ErrComputerNotFound)
	})
}

func TestMaintenanceService_Complete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	maintenanceService := service.NewMaintenanceService(repos.Maintenance, repos.Computer)
	ctx := context.Background()

	t.Run("returns computer to available", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().
			WithStatus(domain.ComputerStatusMaintenance).
			Build(t, testDB.DB)

		result, err := maintenanceService.Complete(ctx, computer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ComputerStatusAvailable, result.Status)
		testutil.AssertComputerStatus(t, testDB.DB, computer.ID, domain.ComputerStatusAvailable)
	})

	t.Run("rejects computer not in maintenance", func(t *testing.T) {
		testDB.Truncate(t)

		computer := testutil.NewComputerBuilder().Build(t, testDB.DB)

		_, err := maintenanceService.Complete(ctx, computer.ID)
		assert.ErrorIs(t, err, domain.ErrComputerNotInMaintenance)
	})
}

func TestMaintenanceService_History(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	maintenanceService := service.NewMaintenanceService(repos.Maintenance, repos.Computer)
	ctx := context.Background()

	first := testutil.NewComputerBuilder().WithName("PC-A").Build(t, testDB.DB)
	second := testutil.NewComputerBuilder().WithName("PC-B").Build(t, testDB.DB)

	_, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
		ComputerID: first.ID,
		Type:       "Deep Cleaning",
		Technician: "Ravi",
	})
	require.NoError(t, err)

	latest, err := maintenanceService.Schedule(ctx, service.ScheduleMaintenanceInput{
		ComputerID: second.ID,
		Type:       "Hardware Repair",
		Technician: "Mina",
	})
	require.NoError(t, err)

	history, err := maintenanceService.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first, joined with computer
	assert.Equal(t, latest.ID, history[0].ID)
	require.NotNil(t, history[0].Computer)
	assert.Equal(t, "PC-B", history[0].Computer.Name)

	limited, err := maintenanceService.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
