package controllers

import (
	"net/http"
	"strconv"
	"time"

	"blogspace-api/models"
	"blogspace-api/repositories"
	"blogspace-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listPageSize = 10

// PageController serves the server-rendered surface. The pages talk to
// the persistence layer directly rather than going through the API.
type PageController struct {
	db   *gorm.DB
	repo *repositories.PostRepository
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{
		db:   db,
		repo: repositories.NewPostRepository(db),
	}
}

func (pg *PageController) PostListPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	posts, total, err := pg.repo.ListPage(page, listPageSize)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load posts")
		return
	}

	totalPages := int((total + listPageSize - 1) / listPageSize)

	c.HTML(http.StatusOK, "post_list.html", gin.H{
		"posts":      posts,
		"page":       page,
		"totalPages": totalPages,
		"hasPrev":    page > 1,
		"hasNext":    page < totalPages,
		"prevPage":   page - 1,
		"nextPage":   page + 1,
	})
}

func (pg *PageController) PostDetailPage(c *gin.Context) {
	post, err := pg.repo.GetDetail(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Post not found")
		return
	}

	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":     post,
		"comments": post.Comments,
	})
}

func (pg *PageController) NewPostPage(c *gin.Context) {
	var authors []models.Author
	if err := pg.db.Find(&authors).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load authors")
		return
	}

	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"authors": authors,
	})
}

// CreatePostForm handles the creation-form submit and redirects back to
// the listing.
func (pg *PageController) CreatePostForm(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	authorID := c.PostForm("author")
	status := c.PostForm("status")
	active := c.PostForm("active") == "on"

	if utils.IsBlank(title) || utils.IsBlank(content) || !utils.IsValidStatus(status) {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	var author models.Author
	if err := pg.db.First(&author, "id = ?", authorID).Error; err != nil {
		c.String(http.StatusBadRequest, "Unknown author")
		return
	}

	post := models.Post{
		ID:            uuid.New().String(),
		Title:         title,
		Content:       content,
		PublishedDate: time.Now(),
		Status:        status,
		Active:        active,
		AuthorID:      author.ID,
	}

	if err := pg.db.Create(&post).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.Redirect(http.StatusSeeOther, "/blog/")
}

// CreateCommentForm handles the inline comment form on the detail page.
// Same rules as the API: the post must be active, content non-blank.
func (pg *PageController) CreateCommentForm(c *gin.Context) {
	post, err := pg.repo.GetWithAuthor(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Post not found")
		return
	}

	if !post.Active {
		c.String(http.StatusBadRequest, "cannot add comment to an inactive post")
		return
	}

	content := c.PostForm("content")
	if utils.IsBlank(content) {
		c.String(http.StatusBadRequest, "Content may not be blank")
		return
	}

	comment := models.Comment{
		ID:      uuid.New().String(),
		PostID:  post.ID,
		Content: content,
		Created: time.Now(),
	}

	if err := pg.db.Create(&comment).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.Redirect(http.StatusSeeOther, "/blog/"+post.ID+"/")
}
