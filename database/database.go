package database

import (
	"fmt"
	"time"

	"blogspace-api/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Listing filters hit title, author name, and the published date.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_title ON posts(title)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts title: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_published_date ON posts(published_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts published_date: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_authors_name ON authors(name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for authors name: %v\n", err)
	}

	return nil
}

// SeedData populates the database with sample content for development.
func SeedData(db *gorm.DB) error {
	var authorCount int64
	db.Model(&models.Author{}).Count(&authorCount)

	if authorCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "$2a$10$dummy", // dev fixture only
	}
	if err := db.Create(&user).Error; err != nil {
		fmt.Printf("Warning: Could not create seed user: %v\n", err)
	}

	author := models.Author{
		ID:     uuid.New().String(),
		Name:   "Jane Smith",
		Email:  "jane.author@example.com",
		UserID: &user.ID,
	}
	if err := db.Create(&author).Error; err != nil {
		fmt.Printf("Warning: Could not create seed author: %v\n", err)
	}

	seedPosts := []models.Post{
		{
			ID:            uuid.New().String(),
			Title:         "Welcome to Blogspace",
			Content:       "A first look at the platform and what you can publish here.",
			PublishedDate: time.Now().AddDate(0, 0, -7),
			Status:        models.StatusPublished,
			Active:        true,
			AuthorID:      author.ID,
		},
		{
			ID:            uuid.New().String(),
			Title:         "Drafting in the open",
			Content:       "Notes on writing drafts that are not yet publicly visible.",
			PublishedDate: time.Now().AddDate(0, 0, -2),
			Status:        models.StatusDraft,
			Active:        false,
			AuthorID:      author.ID,
		},
	}

	for _, post := range seedPosts {
		if err := db.Create(&post).Error; err != nil {
			fmt.Printf("Warning: Could not create seed post %s: %v\n", post.Title, err)
		}
	}

	fmt.Println("Database seeded with sample blog data")
	return nil
}
