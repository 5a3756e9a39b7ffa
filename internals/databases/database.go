package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/configs"
	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	groupModel "karate_coaching_backend/internals/features/coaching/groups/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	trainingModel "karate_coaching_backend/internals/features/coaching/trainings/model"
	orgModel "karate_coaching_backend/internals/features/organizations/model"
	paymentModel "karate_coaching_backend/internals/features/payment/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
	authModel "karate_coaching_backend/internals/features/users/auth/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=karateku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// konversi unique violation → gorm.ErrDuplicatedKey,
		// dipakai semua path create dengan natural key
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// MigrateAll menjalankan AutoMigrate untuk seluruh skema.
// Urutan penting: tabel referensi dulu, baru tabel yang ber-FK ke sana.
func MigrateAll() error {
	return DB.AutoMigrate(
		&orgModel.OrganizationModel{},
		&refModel.GenderModel{},
		&refModel.SportTypeModel{},
		&refModel.AgeCategoryModel{},
		&refModel.WeightCategoryModel{},
		&refModel.SportLevelModel{},
		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.UserRoleModel{},
		&authModel.ResetPasswordCodeModel{},
		&coachModel.CoachProfileModel{},
		&groupModel.GroupModel{},
		&studentModel.StudentProfileModel{},
		&trainingModel.AttendanceStatusModel{},
		&trainingModel.TrainingModel{},
		&trainingModel.AttendanceModel{},
		&eventModel.EventTypeModel{},
		&eventModel.EventModel{},
		&eventModel.StudentEventModel{},
		&resultModel.PlaceModel{},
		&resultModel.ResultModel{},
		&resultModel.ResultCommentModel{},
		&paymentModel.TrainingPaymentModel{},
	)
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
