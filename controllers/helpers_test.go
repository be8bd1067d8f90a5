package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"blogspace-api/config"
	"blogspace-api/controllers"
	"blogspace-api/models"
	"blogspace-api/routes"
	"blogspace-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Author{}, &models.Post{}, &models.Comment{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: testJWTSecret}

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	routes.SetupRoutes(r, db, cfg, services.NewEmailService(cfg))
	return db, r
}

func createUser(t *testing.T, db *gorm.DB, name, email, password string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createAuthor(t *testing.T, db *gorm.DB, name, email string, userID *string) models.Author {
	t.Helper()
	author := models.Author{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  email,
		UserID: userID,
	}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to create author: %v", err)
	}
	return author
}

func createPost(t *testing.T, db *gorm.DB, author models.Author, title string, active bool) models.Post {
	t.Helper()
	post := models.Post{
		ID:            uuid.New().String(),
		Title:         title,
		Content:       "Content for " + title,
		PublishedDate: time.Now(),
		Status:        models.StatusPublished,
		Active:        active,
		AuthorID:      author.ID,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}

func tokenFor(t *testing.T, db *gorm.DB, userID string) string {
	t.Helper()
	token, err := controllers.NewAuthController(db, testJWTSecret).GenerateJWT(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// doJSON sends a JSON request through the router; token may be empty for
// anonymous requests.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &body)
	return body.Detail
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}

func postCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count posts: %v", err)
	}
	return count
}
