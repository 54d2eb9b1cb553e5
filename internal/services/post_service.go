package services

import (
	"fmt"
	"strings"

	"medsales/internal/db"
	"medsales/internal/domain"
	"medsales/internal/domain/models"
	"medsales/internal/repositories"
	"medsales/internal/utils"
)

// PostService owns the slug lifecycle and write rules for posts.
type PostService struct {
	Repo      repositories.PostRepository
	RequestID string
}

func postFilter(status string) *db.Where {
	if status == "" {
		status = models.PostStatusPublished
	}
	w := &db.Where{}
	w.Eq("status", status)
	return w
}

func (s PostService) List(status string, req domain.PageRequest) (domain.Page[models.Post], error) {
	items, meta, err := s.Repo.List(postFilter(status), req)
	if err != nil {
		return domain.Page[models.Post]{}, err
	}
	return domain.Page[models.Post]{Items: items, Pagination: meta}, nil
}

// Get resolves a public detail lookup by id or slug; only published posts.
func (s PostService) Get(ref string) (models.Post, error) {
	return s.Repo.GetByRef(ref, models.PostStatusPublished)
}

// PostInput is a create payload; Title is the only required field.
type PostInput struct {
	Title    string
	Summary  string
	Content  string
	Author   string
	Featured bool
	Status   string
}

func (s PostService) Create(in PostInput) (models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Post{}, domain.ValidationError{Field: "title", Msg: "post title is required"}
	}

	slug := utils.Slugify(title)
	if slug == "" {
		return models.Post{}, domain.ValidationError{Field: "title", Msg: "post title must contain letters or digits"}
	}

	taken, err := s.Repo.SlugTaken(slug, 0)
	if err != nil {
		return models.Post{}, err
	}
	if taken {
		return models.Post{}, domain.ConflictError{Resource: "post", Msg: "a post with this title already exists"}
	}

	p := models.Post{
		Slug:     slug,
		Title:    title,
		Summary:  in.Summary,
		Content:  in.Content,
		Author:   in.Author,
		Featured: in.Featured,
		Status:   in.Status,
	}
	if p.Author == "" {
		p.Author = "Admin"
	}
	if p.Status == "" {
		p.Status = models.PostStatusPublished
	}

	id, err := s.Repo.Insert(p)
	if err != nil {
		return models.Post{}, err
	}

	utils.LogEvent(s.RequestID, "post", "create", fmt.Sprintf("id=%d slug=%s", id, slug))
	return s.Repo.GetByID(id)
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title    *string
	Summary  *string
	Content  *string
	Author   *string
	Featured *bool
	Status   *string
}

func (s PostService) Update(id int64, in PostUpdate) (models.Post, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Post{}, err
	}

	patch := repositories.PostPatch{
		Summary:  in.Summary,
		Content:  in.Content,
		Author:   in.Author,
		Featured: in.Featured,
		Status:   in.Status,
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return models.Post{}, domain.ValidationError{Field: "title", Msg: "post title cannot be empty"}
		}
		patch.Title = &title
		if title != existing.Title {
			slug := utils.Slugify(title)
			if slug == "" {
				return models.Post{}, domain.ValidationError{Field: "title", Msg: "post title must contain letters or digits"}
			}
			taken, err := s.Repo.SlugTaken(slug, id)
			if err != nil {
				return models.Post{}, err
			}
			if taken {
				return models.Post{}, domain.ConflictError{Resource: "post", Msg: "a post with this title already exists"}
			}
			patch.Slug = &slug
		}
	}

	if err := s.Repo.Update(id, patch); err != nil {
		return models.Post{}, err
	}

	utils.LogEvent(s.RequestID, "post", "update", fmt.Sprintf("id=%d", id))
	return s.Repo.GetByID(id)
}

func (s PostService) Delete(id int64) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "post", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
