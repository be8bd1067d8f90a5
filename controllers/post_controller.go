package controllers

import (
	"net/http"
	"time"

	"blogspace-api/middleware"
	"blogspace-api/models"
	"blogspace-api/repositories"
	"blogspace-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostController struct {
	db   *gorm.DB
	repo *repositories.PostRepository
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:   db,
		repo: repositories.NewPostRepository(db),
	}
}

type CreatePostRequest struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	PublishedDate *time.Time `json:"published_date"`
	Status        string     `json:"status"`
}

// UpdatePostRequest uses pointers so partial updates can tell "not
// supplied" apart from a zero value.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Active  *bool   `json:"active"`
}

// GetPosts lists active posts, optionally filtered by title substring,
// author name substring, and an inclusive published-date range.
func (pc *PostController) GetPosts(c *gin.Context) {
	filter := repositories.PostFilter{
		Title:      c.Query("title"),
		AuthorName: c.Query("author_name"),
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.SendValidationError(c, "start_date must be an ISO date (YYYY-MM-DD)")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.SendValidationError(c, "end_date must be an ISO date (YYYY-MM-DD)")
			return
		}
		filter.EndDate = &end
	}

	posts, err := pc.repo.List(filter)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].Summary())
	}

	c.JSON(http.StatusOK, summaries)
}

// GetPost returns the full detail with nested comments. The active flag is
// deliberately not checked here, so inactive posts stay reachable by id.
func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.repo.GetDetail(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.JSON(http.StatusOK, post.Detail())
}

// CreatePost requires the caller to be registered as an author. The new
// post is always created active and owned by the caller's author record.
func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var author models.Author
	if err := pc.db.Where("user_id = ?", userID).First(&author).Error; err != nil {
		utils.SendError(c, http.StatusForbidden, "User is not registered as an author")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Title) {
		utils.SendValidationError(c, "Title may not be blank")
		return
	}
	exists, err := pc.repo.TitleExists(req.Title)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	if exists {
		utils.SendValidationError(c, "A post with this title already exists")
		return
	}
	if !utils.IsValidContent(req.Content) {
		utils.SendValidationError(c, "Content must be at least 10 characters long")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !utils.IsValidStatus(status) {
		utils.SendValidationError(c, "Status must be draft or published")
		return
	}

	publishedDate := time.Now()
	if req.PublishedDate != nil {
		publishedDate = *req.PublishedDate
	}

	post := models.Post{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Content:       req.Content,
		PublishedDate: publishedDate,
		Status:        status,
		Active:        true,
		AuthorID:      author.ID,
	}

	if err := pc.repo.Create(&post); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.SendCreated(c, "Post created successfully!", post)
}

// UpdatePost checks ownership against the stored post before looking at
// any field. Partial updates leave unsupplied fields unchanged; title
// uniqueness is not re-checked on edit.
func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	post, err := pc.repo.GetWithAuthor(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.Author.IsLinkedTo(userID) {
		utils.SendError(c, http.StatusForbidden, "You do not have permission to modify this post")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if utils.IsBlank(*req.Title) {
			utils.SendValidationError(c, "Title may not be blank")
			return
		}
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		if !utils.IsValidContent(*req.Content) {
			utils.SendValidationError(c, "Content must be at least 10 characters long")
			return
		}
		updates["content"] = *req.Content
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := pc.repo.Update(post, updates); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update post")
			return
		}
	}

	updated, err := pc.repo.GetWithAuthor(post.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePost removes the post and all its comments. Deletion is immediate
// and irreversible.
func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	post, err := pc.repo.GetWithAuthor(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.Author.IsLinkedTo(userID) {
		utils.SendError(c, http.StatusForbidden, "You do not have permission to modify this post")
		return
	}

	if err := pc.repo.Delete(post); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}
