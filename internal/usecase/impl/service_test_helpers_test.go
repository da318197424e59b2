package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodtruck/internal/domain/entity"
	"foodtruck/internal/domain/repository"
	"foodtruck/internal/domain/schedule"
	mockRepo "foodtruck/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine() *schedule.Engine {
	return schedule.NewEngine(schedule.DefaultOptions(), newDiscardLogger())
}

func newYork(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data not available: %v", err)
	}

	return loc
}

// mondayAt returns 2025-03-10, a Monday, at hh:mm New York time.
func mondayAt(t *testing.T, hh, mm int) time.Time {
	return time.Date(2025, 3, 10, hh, mm, 0, 0, newYork(t))
}

// lunchTenant serves 11:00-14:00 on Monday and Tuesday in New York.
func lunchTenant() *entity.Tenant {
	return &entity.Tenant{
		ID:           uuid.New(),
		Subdomain:    "tacos",
		BusinessName: "Taco Loco",
		Schedule: entity.WeeklySchedule{
			Title:           "Downtown",
			PrimaryTimezone: "America/New_York",
			Days: []entity.ScheduleDay{
				{Day: entity.Monday, Location: "Main St", OpenTime: "11:00", CloseTime: "14:00"},
				{Day: entity.Tuesday, Location: "Main St", OpenTime: "11:00", CloseTime: "14:00"},
			},
		},
	}
}

// expectTx makes the transaction manager run the callback against a fresh
// tenant repository mock prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx any, setup func(tenantRepo *mockRepo.MockTenantRepository)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			tenantRepo := mockRepo.NewMockTenantRepository(t)
			factory.EXPECT().TenantRepo().Return(tenantRepo)
			setup(tenantRepo)

			return fn(factory)
		})
}
