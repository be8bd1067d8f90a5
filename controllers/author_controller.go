package controllers

import (
	"net/http"

	"blogspace-api/middleware"
	"blogspace-api/models"
	"blogspace-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorController struct {
	db *gorm.DB
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{db: db}
}

type CreateAuthorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type AuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateAuthor links an Author record to the calling user. A user holds at
// most one author identity.
func (ac *AuthorController) CreateAuthor(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Name) {
		utils.SendValidationError(c, "Name may not be blank")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.SendValidationError(c, "Enter a valid email address")
		return
	}

	var existing models.Author
	if err := ac.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "User already has an author profile")
		return
	}
	if err := ac.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Author with this email already exists")
		return
	}

	author := models.Author{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Email:  req.Email,
		UserID: &userID,
	}

	if err := ac.db.Create(&author).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create author")
		return
	}

	utils.SendCreated(c, "Author created successfully!", AuthorResponse{
		ID:    author.ID,
		Name:  author.Name,
		Email: author.Email,
	})
}

func (ac *AuthorController) GetAuthor(c *gin.Context) {
	authorID := c.Param("id")

	var author models.Author
	if err := ac.db.First(&author, "id = ?", authorID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Author not found")
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{
		ID:    author.ID,
		Name:  author.Name,
		Email: author.Email,
	})
}
