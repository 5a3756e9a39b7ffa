package seeds

import (
	"log"

	"gorm.io/gorm"

	"karate_coaching_backend/internals/constants"
	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
	trainingModel "karate_coaching_backend/internals/features/coaching/trainings/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

// RunAllSeeds mengisi data referensi. Idempotent: FirstOrCreate per
// natural key, aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Seeding data referensi...")

	seedRoles(db)
	seedGenders(db)
	seedSportTypes(db)
	seedSportLevels(db)
	seedAttendanceStatuses(db)
	seedPlaces(db)
	seedEventTypes(db)

	log.Println("✅ Seeding selesai.")
}

func seedRoles(db *gorm.DB) {
	roles := []userModel.RoleModel{
		{Name: "Coach", Code: constants.RoleCodeCoach},
		{Name: "Student", Code: constants.RoleCodeStudent},
	}
	for _, r := range roles {
		if err := db.Where("code = ?", r.Code).FirstOrCreate(&r).Error; err != nil {
			log.Printf("[ERROR] seed role %s: %v", r.Code, err)
		}
	}
}

func seedGenders(db *gorm.DB) {
	for _, name := range []string{"Мужской", "Женский"} {
		g := refModel.GenderModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&g).Error; err != nil {
			log.Printf("[ERROR] seed gender %s: %v", name, err)
		}
	}
}

func seedSportTypes(db *gorm.DB) {
	types := []refModel.SportTypeModel{
		{Name: "Кумитэ", Code: "karate_kumite"},
		{Name: "Ката", Code: "karate_kata"},
	}
	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("[ERROR] seed sport type %s: %v", t.Code, err)
		}
	}
}

func seedSportLevels(db *gorm.DB) {
	levels := []refModel.SportLevelModel{
		{Name: "10 кю", Rank: 1},
		{Name: "9 кю", Rank: 2},
		{Name: "8 кю", Rank: 3},
		{Name: "7 кю", Rank: 4},
		{Name: "6 кю", Rank: 5},
		{Name: "5 кю", Rank: 6},
		{Name: "4 кю", Rank: 7},
		{Name: "3 кю", Rank: 8},
		{Name: "2 кю", Rank: 9},
		{Name: "1 кю", Rank: 10},
		{Name: "1 дан", Rank: 11},
	}
	for _, l := range levels {
		if err := db.Where("name = ?", l.Name).FirstOrCreate(&l).Error; err != nil {
			log.Printf("[ERROR] seed sport level %s: %v", l.Name, err)
		}
	}
}

func seedAttendanceStatuses(db *gorm.DB) {
	for _, name := range []string{"Присутствовал", "Отсутствовал", "Болел"} {
		s := trainingModel.AttendanceStatusModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&s).Error; err != nil {
			log.Printf("[ERROR] seed attendance status %s: %v", name, err)
		}
	}
}

func seedPlaces(db *gorm.DB) {
	for _, name := range []string{"1 место", "2 место", "3 место", "Без места"} {
		p := resultModel.PlaceModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&p).Error; err != nil {
			log.Printf("[ERROR] seed place %s: %v", name, err)
		}
	}
}

func seedEventTypes(db *gorm.DB) {
	for _, name := range []string{"Соревнование", "Аттестация", "Семинар", "Сборы"} {
		t := eventModel.EventTypeModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&t).Error; err != nil {
			log.Printf("[ERROR] seed event type %s: %v", name, err)
		}
	}
}
