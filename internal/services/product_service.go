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

// ProductService owns the slug lifecycle and write rules for products.
type ProductService struct {
	Repo      repositories.ProductRepository
	RequestID string
}

// productFilter builds the public listing predicate: status always binds
// (default active), then free-text search over name+summary, then category.
func productFilter(q, category, status string) *db.Where {
	if status == "" {
		status = models.ProductStatusActive
	}
	w := &db.Where{}
	w.Eq("status", status)
	if q != "" {
		w.Search(q, "name", "summary")
	}
	if category != "" {
		w.Eq("category", category)
	}
	return w
}

func (s ProductService) List(q, category, status string, req domain.PageRequest) (domain.Page[models.Product], error) {
	items, meta, err := s.Repo.List(productFilter(q, category, status), req)
	if err != nil {
		return domain.Page[models.Product]{}, err
	}
	return domain.Page[models.Product]{Items: items, Pagination: meta}, nil
}

// Get resolves a public detail lookup by id or slug; only active products.
func (s ProductService) Get(ref string) (models.Product, error) {
	return s.Repo.GetByRef(ref, models.ProductStatusActive)
}

// ProductInput is a create payload; Name is the only required field.
type ProductInput struct {
	Name        string
	Summary     string
	Description string
	Price       float64
	Category    string
	Images      []string
	Specs       map[string]string
	Featured    bool
}

func (s ProductService) Create(in ProductInput) (models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, domain.ValidationError{Field: "name", Msg: "product name is required"}
	}

	slug := utils.Slugify(name)
	if slug == "" {
		return models.Product{}, domain.ValidationError{Field: "name", Msg: "product name must contain letters or digits"}
	}

	taken, err := s.Repo.SlugTaken(slug, 0)
	if err != nil {
		return models.Product{}, err
	}
	if taken {
		return models.Product{}, domain.ConflictError{Resource: "product", Msg: "a product with this name already exists"}
	}

	p := models.Product{
		Slug:        slug,
		Name:        name,
		Summary:     in.Summary,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Images:      in.Images,
		Specs:       in.Specs,
		Featured:    in.Featured,
		Status:      models.ProductStatusActive,
	}

	// The unique slug index backs this up: a concurrent writer that slips
	// past the pre-check still surfaces as a conflict, not a stored duplicate.
	id, err := s.Repo.Insert(p)
	if err != nil {
		return models.Product{}, err
	}

	utils.LogEvent(s.RequestID, "product", "create", fmt.Sprintf("id=%d slug=%s", id, slug))
	return s.Repo.GetByID(id)
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Summary     *string
	Description *string
	Price       *float64
	Category    *string
	Images      []string
	ImagesSet   bool
	Specs       map[string]string
	SpecsSet    bool
	Featured    *bool
	Status      *string
}

func (s ProductService) Update(id int64, in ProductUpdate) (models.Product, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}

	patch := repositories.ProductPatch{
		Summary:     in.Summary,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Images:      in.Images,
		ImagesSet:   in.ImagesSet,
		Specs:       in.Specs,
		SpecsSet:    in.SpecsSet,
		Featured:    in.Featured,
		Status:      in.Status,
	}

	// The slug is regenerated only when the name actually changes; resending
	// the same name leaves the existing slug alone.
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Product{}, domain.ValidationError{Field: "name", Msg: "product name cannot be empty"}
		}
		patch.Name = &name
		if name != existing.Name {
			slug := utils.Slugify(name)
			if slug == "" {
				return models.Product{}, domain.ValidationError{Field: "name", Msg: "product name must contain letters or digits"}
			}
			taken, err := s.Repo.SlugTaken(slug, id)
			if err != nil {
				return models.Product{}, err
			}
			if taken {
				return models.Product{}, domain.ConflictError{Resource: "product", Msg: "a product with this name already exists"}
			}
			patch.Slug = &slug
		}
	}

	if err := s.Repo.Update(id, patch); err != nil {
		return models.Product{}, err
	}

	utils.LogEvent(s.RequestID, "product", "update", fmt.Sprintf("id=%d", id))
	return s.Repo.GetByID(id)
}

func (s ProductService) Delete(id int64) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "product", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
