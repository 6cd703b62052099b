package config

import (
	"log"
	"strings"

	"literaryhub/internal/adapters/persistence/models"
	"literaryhub/internal/core/domain"
	"literaryhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db    *gorm.DB
	admin AdminConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, admin AdminConfig) *Seeder {
	return &Seeder{db: db, admin: admin}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if err := s.seedBooks(); err != nil {
		return err
	}

	if err := s.seedNews(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the bootstrap admin from ADMIN_EMAIL / ADMIN_PASSWORD
func (s *Seeder) seedAdminUser() error {
	email := strings.ToLower(strings.TrimSpace(s.admin.Email))
	if email == "" || s.admin.Password == "" {
		log.Println("⚠️ Skipping admin seed: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     s.admin.Name,
		Email:    email,
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

func (s *Seeder) seedBooks() error {
	var count int64
	if err := s.db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := SampleBooks()
	if err := s.db.Create(&books).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d books", len(books))
	return nil
}

func (s *Seeder) seedNews() error {
	var count int64
	if err := s.db.Model(&models.News{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	news := SampleNews()
	if err := s.db.Create(&news).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d news items", len(news))
	return nil
}
