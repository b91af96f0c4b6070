package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lls_backend/internals/configs"
	academicYearModel "lls_backend/internals/features/academic/academic_years/model"
	courseModel "lls_backend/internals/features/academic/courses/model"
	programModel "lls_backend/internals/features/academic/programs/model"
	recordModel "lls_backend/internals/features/admin/records/model"
	assignmentModel "lls_backend/internals/features/learning/assignments/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	mcqModel "lls_backend/internals/features/learning/mcqs/model"
	quizModel "lls_backend/internals/features/learning/quiz/model"
	staffModel "lls_backend/internals/features/staff/model"
	studentModel "lls_backend/internals/features/students/model"
	submissionModel "lls_backend/internals/features/submissions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=lls&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
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

// MigrateDB creates/updates every table the service owns.
func MigrateDB() {
	err := DB.AutoMigrate(
		&academicYearModel.AcademicYearModel{},
		&programModel.ProgramModel{},
		&staffModel.StaffModel{},
		&courseModel.CourseModel{},
		&courseModel.ProgramCourseModel{},
		&studentModel.StudentModel{},
		&materialModel.StudyMaterialModel{},
		&mcqModel.MCQModel{},
		&assignmentModel.AssignmentModel{},
		&submissionModel.AssignmentSubmissionModel{},
		&quizModel.QuizAnswerModel{},
		&recordModel.PaymentModel{},
		&recordModel.CertificateModel{},
		&recordModel.FeedbackModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] DB migrated.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
