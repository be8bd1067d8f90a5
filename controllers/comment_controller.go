package controllers

import (
	"fmt"
	"net/http"
	"time"

	"blogspace-api/middleware"
	"blogspace-api/models"
	"blogspace-api/repositories"
	"blogspace-api/services"
	"blogspace-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentController struct {
	db           *gorm.DB
	repo         *repositories.PostRepository
	emailService *services.EmailService
}

func NewCommentController(db *gorm.DB, emailService *services.EmailService) *CommentController {
	return &CommentController{
		db:           db,
		repo:         repositories.NewPostRepository(db),
		emailService: emailService,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment accepts anonymous callers. An authenticated caller's
// identity is attached to the comment; comments are only allowed on
// active posts.
func (cc *CommentController) CreateComment(c *gin.Context) {
	post, err := cc.repo.GetWithAuthor(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.Active {
		utils.SendValidationError(c, "cannot add comment to an inactive post")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Content) {
		utils.SendValidationError(c, "Content may not be blank")
		return
	}

	comment := models.Comment{
		ID:      uuid.New().String(),
		PostID:  post.ID,
		Content: req.Content,
		Created: time.Now(),
	}

	commenter := "Someone"
	var commentUser *models.User
	if userID := c.GetString(middleware.UserIDKey); userID != "" {
		var user models.User
		if err := cc.db.First(&user, "id = ?", userID).Error; err == nil {
			comment.UserID = &user.ID
			commentUser = &user
			commenter = user.Name
		}
	}

	if err := cc.db.Create(&comment).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	comment.User = commentUser

	if cc.emailService.Enabled() {
		go func(email, name, title, commenter string) {
			if err := cc.emailService.SendCommentNotification(email, name, title, commenter); err != nil {
				fmt.Printf("Failed to send comment notification: %v\n", err)
			}
		}(post.Author.Email, post.Author.Name, post.Title, commenter)
	}

	c.JSON(http.StatusCreated, comment.View())
}

// GetComments returns a post's comments oldest first.
func (cc *CommentController) GetComments(c *gin.Context) {
	post, err := cc.repo.GetDetail(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	views := make([]models.CommentView, 0, len(post.Comments))
	for i := range post.Comments {
		views = append(views, post.Comments[i].View())
	}

	c.JSON(http.StatusOK, views)
}
