package handlers

import (
	"net/http"
	"strings"

	"medsales/internal/http/middleware"
	"medsales/internal/repositories"
	"medsales/internal/services"

	"github.com/gin-gonic/gin"
)

func postService(c *gin.Context) services.PostService {
	return services.PostService{
		Repo:      repositories.PostRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/posts?status=&page=&pageSize=
func GetPosts(c *gin.Context) {
	page, err := postService(c).List(strings.TrimSpace(c.Query("status")), pageRequest(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, page)
}

// GET /api/posts/:id — numeric id or slug, published posts only.
func GetPost(c *gin.Context) {
	post, err := postService(c).Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, post)
}

type postPayload struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Featured bool   `json:"featured"`
	Status   string `json:"status"`
}

// POST /api/posts
func CreatePost(c *gin.Context) {
	var payload postPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	post, err := postService(c).Create(services.PostInput{
		Title:    payload.Title,
		Summary:  payload.Summary,
		Content:  payload.Content,
		Author:   payload.Author,
		Featured: payload.Featured,
		Status:   payload.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, post)
}

type postUpdatePayload struct {
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Featured *bool   `json:"featured"`
	Status   *string `json:"status"`
}

// PUT /api/posts/:id
func UpdatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload postUpdatePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	post, err := postService(c).Update(id, services.PostUpdate{
		Title:    payload.Title,
		Summary:  payload.Summary,
		Content:  payload.Content,
		Author:   payload.Author,
		Featured: payload.Featured,
		Status:   payload.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, post)
}

// DELETE /api/posts/:id
func DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := postService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"deleted": true})
}
