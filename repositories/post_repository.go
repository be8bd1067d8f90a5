package repositories

import (
	"strings"
	"time"

	"blogspace-api/models"

	"gorm.io/gorm"
)

// PostFilter narrows the public listing. Date bounds are inclusive and
// compared against the date portion of published_date; either side may be
// open.
type PostFilter struct {
	Title      string
	AuthorName string
	StartDate  *time.Time
	EndDate    *time.Time
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns active posts matching the filter, with authors loaded.
func (r *PostRepository) List(filter PostFilter) ([]models.Post, error) {
	query := r.db.Model(&models.Post{}).
		Select("posts.*").
		Joins("JOIN authors ON authors.id = posts.author_id").
		Where("posts.active = ?", true)

	if filter.Title != "" {
		query = query.Where("LOWER(posts.title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.AuthorName != "" {
		query = query.Where("LOWER(authors.name) LIKE ?", "%"+strings.ToLower(filter.AuthorName)+"%")
	}
	if filter.StartDate != nil {
		query = query.Where("DATE(posts.published_date) >= ?", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query = query.Where("DATE(posts.published_date) <= ?", filter.EndDate.Format("2006-01-02"))
	}

	var posts []models.Post
	if err := query.Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPage returns one page of all posts (active or not) for the
// server-rendered listing, newest first, plus the total count.
func (r *PostRepository) ListPage(page, pageSize int) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.db.Preload("Author").
		Order("published_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetWithAuthor loads a post and its author regardless of the active flag.
func (r *PostRepository) GetWithAuthor(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetDetail loads a post with its author and ordered comments.
func (r *PostRepository) GetDetail(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created ASC")
		}).
		Preload("Comments.User").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// TitleExists reports whether a post with exactly this title is stored.
func (r *PostRepository) TitleExists(title string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("title = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) Update(post *models.Post, updates map[string]interface{}) error {
	return r.db.Model(post).Updates(updates).Error
}

// Delete removes a post and all its comments in one transaction.
func (r *PostRepository) Delete(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// DeleteAuthor removes an author, its posts, and their comments in one
// transaction. The schema declares the same cascade; doing it explicitly
// keeps the policy in force on stores without FK enforcement enabled.
func (r *PostRepository) DeleteAuthor(author *models.Author) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []string
		if err := tx.Model(&models.Post{}).Where("author_id = ?", author.ID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(author).Error
	})
}
