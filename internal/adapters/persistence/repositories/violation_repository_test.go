package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vvms/internal/adapters/persistence/models"
	"vvms/internal/core/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedViolation(t *testing.T, repo ViolationRepository, plate, vtype, violation, location string, fine float64, status string, at time.Time) *models.Violation {
	t.Helper()

	v := &models.Violation{
		PlateNumber:   plate,
		VehicleType:   vtype,
		ViolationType: violation,
		Location:      location,
		FineAmount:    fine,
		DateTime:      at,
		OfficerName:   "Officer Smith",
		Status:        status,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestViolationRepository_CreateAndGetByID(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	created := seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 150.00, "Pending", time.Now())
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "ABC123", got.PlateNumber)
	require.Equal(t, "Speeding", got.ViolationType)
	require.Equal(t, 150.00, got.FineAmount)
	require.Equal(t, "Pending", got.Status)
	require.False(t, got.CreatedAt.IsZero())
}

func TestViolationRepository_GetByIDNotFound(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestViolationRepository_GetAllOrdering(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedViolation(t, repo, "AAA111", "Car", "Speeding", "Main St", 100, "Pending", base)
	newest := seedViolation(t, repo, "BBB222", "Truck", "Overloading", "Dock Rd", 200, "Pending", base.Add(2*time.Hour))
	middle := seedViolation(t, repo, "CCC333", "Van", "No Seatbelt", "5th Ave", 100, "Pending", base.Add(time.Hour))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, newest.ID, all[0].ID)
	require.Equal(t, middle.ID, all[1].ID)
	require.Equal(t, oldest.ID, all[2].ID)
}

func TestViolationRepository_GetAllTieBreakByID(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedViolation(t, repo, "AAA111", "Car", "Speeding", "Main St", 100, "Pending", at)
	second := seedViolation(t, repo, "BBB222", "Car", "Speeding", "Main St", 100, "Pending", at)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Same date_time: later insert wins
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)
}

func TestViolationRepository_List(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedViolation(t, repo, fmt.Sprintf("PLT%03d", i), "Car", "Speeding", "Main St", 100, "Pending", base.Add(time.Duration(i)*time.Minute))
	}

	page, total, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	require.Equal(t, "PLT004", page[0].PlateNumber)
	require.Equal(t, "PLT003", page[1].PlateNumber)
}

func TestViolationRepository_SearchCaseInsensitive(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now()
	seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 150, "Pending", now)
	seedViolation(t, repo, "XYZ789", "Motorcycle", "Illegal Parking", "5th Ave", 75, "Pending", now)

	byPlate, err := repo.Search(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, byPlate, 1)
	require.Equal(t, "ABC123", byPlate[0].PlateNumber)

	byType, err := repo.Search(ctx, "PARKING")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	require.Equal(t, "XYZ789", byType[0].PlateNumber)

	byLocation, err := repo.Search(ctx, "main")
	require.NoError(t, err)
	require.Len(t, byLocation, 1)

	issued := &models.Violation{
		PlateNumber:   "JKL456",
		VehicleType:   "Truck",
		ViolationType: "Speeding",
		Location:      "Oak Rd",
		FineAmount:    200,
		DateTime:      now,
		OfficerName:   "Officer Diaz",
		Status:        "Pending",
	}
	require.NoError(t, repo.Create(ctx, issued))

	byOfficer, err := repo.Search(ctx, "DIAZ")
	require.NoError(t, err)
	require.Len(t, byOfficer, 1)
	require.Equal(t, "JKL456", byOfficer[0].PlateNumber)

	none, err := repo.Search(ctx, "nonexistent")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestViolationRepository_GetByStatus(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now()
	seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 150, "Pending", now)
	seedViolation(t, repo, "XYZ789", "Car", "Speeding", "Main St", 150, "Paid", now)

	paid, err := repo.GetByStatus(ctx, "Paid")
	require.NoError(t, err)
	require.Len(t, paid, 1)
	require.Equal(t, "XYZ789", paid[0].PlateNumber)

	review, err := repo.GetByStatus(ctx, "Under Review")
	require.NoError(t, err)
	require.Empty(t, review)
}

func TestViolationRepository_Delete(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	v := seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 150, "Pending", time.Now())

	deleted, err := repo.Delete(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Second delete is a no-op, not an error
	deleted, err = repo.Delete(ctx, v.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = repo.GetByID(ctx, v.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestViolationRepository_Statistics(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now()
	seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 150, "Paid", now)
	seedViolation(t, repo, "ABC123", "Car", "Speeding", "Main St", 200, "Paid", now)
	seedViolation(t, repo, "XYZ789", "Car", "Illegal Parking", "5th Ave", 50, "Pending", now)
	seedViolation(t, repo, "DEF456", "Truck", "Speeding", "Highway 9", 300, "Cancelled", now)

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 4, stats.Total)
	require.EqualValues(t, 1, stats.Pending)
	require.EqualValues(t, 2, stats.Paid)
	require.EqualValues(t, 1, stats.Cancelled)
	require.EqualValues(t, 0, stats.UnderReview)
	require.InDelta(t, 350.00, stats.Revenue, 0.001)

	require.NotEmpty(t, stats.TopViolations)
	require.Equal(t, "Speeding", stats.TopViolations[0].ViolationType)
	require.EqualValues(t, 3, stats.TopViolations[0].Count)

	require.NotEmpty(t, stats.TopViolators)
	require.Equal(t, "ABC123", stats.TopViolators[0].PlateNumber)
	require.EqualValues(t, 2, stats.TopViolators[0].Count)
}

func TestViolationRepository_StatisticsEmpty(t *testing.T) {
	repo := NewViolationRepository(newTestDB(t))

	stats, err := repo.Statistics(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0, stats.Total)
	require.Zero(t, stats.Revenue)
	require.Empty(t, stats.TopViolations)
	require.Empty(t, stats.TopViolators)
}

func TestUserRepository_CreateAndLookups(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "hashed",
		Role:     string(domain.RoleOfficer),
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "officer1")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	taken, err := repo.UsernameTaken(ctx, "officer1")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "officer1@violations.local")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.UsernameTaken(ctx, "nobody")
	require.NoError(t, err)
	require.False(t, taken)
}
