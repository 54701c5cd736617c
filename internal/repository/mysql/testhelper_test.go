package mysql_test

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mysqlRepo "github.com/Guyuepp/food-reels/internal/repository/mysql"
	"github.com/Guyuepp/food-reels/internal/repository/mysql/model"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive and serializes
// transactions the way row locks would on mysql.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, mysqlRepo.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	u := model.User{
		ID:       uuid.NewString(),
		Name:     faker.Name(),
		Email:    uuid.NewString() + "@example.com",
		Password: "hash",
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedPartner(t *testing.T, db *gorm.DB) model.FoodPartner {
	t.Helper()
	p := model.FoodPartner{
		ID:          uuid.NewString(),
		Name:        faker.Name(),
		ContactName: faker.Name(),
		Phone:       faker.Phonenumber(),
		Address:     "1 Market Street",
		Email:       uuid.NewString() + "@example.com",
		Password:    "hash",
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedFood(t *testing.T, db *gorm.DB, partnerID string, createdAt time.Time) model.Food {
	t.Helper()
	f := model.Food{
		ID:            uuid.NewString(),
		Name:          "Ramen",
		Description:   "Tonkotsu broth",
		Video:         "https://cdn.example.com/videos/" + uuid.NewString() + ".mp4",
		FoodPartnerID: partnerID,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func loadFood(t *testing.T, db *gorm.DB, id string) model.Food {
	t.Helper()
	var f model.Food
	require.NoError(t, db.Take(&f, "id = ?", id).Error)
	return f
}

func countEdges(t *testing.T, db *gorm.DB, foodID, kind string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Edge{}).Where("food_id = ? AND kind = ?", foodID, kind).Count(&n).Error)
	return n
}

func edgeExists(t *testing.T, db *gorm.DB, userID, foodID, kind string) bool {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Edge{}).
		Where("user_id = ? AND food_id = ? AND kind = ?", userID, foodID, kind).
		Count(&n).Error)
	return n > 0
}
