package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/config"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. A single connection
// keeps the :memory: store from being split across pool members.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OwnerProfile{},
		&models.SitterProfile{},
		&models.ProfileImage{},
		&models.Booking{},
		&models.Review{},
		&models.CertificationRequest{},
		&models.Favorite{},
		&models.RefreshToken{},
		&models.SystemLog{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		ResetTokenExpiry: time.Hour,
	}
}

// createUser inserts a user with the given role plus its role profile, the
// way registration does.
func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		Password: "hashed",
		Name:     "Test " + role,
		Role:     role,
		Region:   "Amsterdam",
	}
	require.NoError(t, db.Create(&user).Error)

	switch role {
	case models.RoleOwner:
		require.NoError(t, db.Create(&models.OwnerProfile{ID: uuid.New(), UserID: user.ID}).Error)
	case models.RoleSitter:
		require.NoError(t, db.Create(&models.SitterProfile{ID: uuid.New(), UserID: user.ID}).Error)
	}

	return &user
}

// createBookingWithStatus seeds a booking directly in the given status.
func createBookingWithStatus(t *testing.T, db *gorm.DB, ownerID, sitterID uuid.UUID, status string) *models.Booking {
	t.Helper()

	booking := models.Booking{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		SitterID:    sitterID,
		Status:      status,
		RequestedAt: time.Now(),
	}
	require.NoError(t, db.Create(&booking).Error)
	return &booking
}
