package handlers

import (
	"net/http"
	"strings"

	"medsales/internal/http/middleware"
	"medsales/internal/repositories"
	"medsales/internal/services"

	"github.com/gin-gonic/gin"
)

func productService(c *gin.Context) services.ProductService {
	return services.ProductService{
		Repo:      repositories.ProductRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/products?q=&category=&status=&page=&pageSize=
func GetProducts(c *gin.Context) {
	page, err := productService(c).List(
		strings.TrimSpace(c.Query("q")),
		strings.TrimSpace(c.Query("category")),
		strings.TrimSpace(c.Query("status")),
		pageRequest(c),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, page)
}

// GET /api/products/:id — numeric id or slug, active products only.
func GetProduct(c *gin.Context) {
	product, err := productService(c).Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, product)
}

type productPayload struct {
	Name        string            `json:"name"`
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Category    string            `json:"category"`
	Images      []string          `json:"images"`
	Specs       map[string]string `json:"specs"`
	Featured    bool              `json:"featured"`
}

// POST /api/products
func CreateProduct(c *gin.Context) {
	var payload productPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	product, err := productService(c).Create(services.ProductInput{
		Name:        payload.Name,
		Summary:     payload.Summary,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Images:      payload.Images,
		Specs:       payload.Specs,
		Featured:    payload.Featured,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, product)
}

type productUpdatePayload struct {
	Name        *string            `json:"name"`
	Summary     *string            `json:"summary"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price"`
	Category    *string            `json:"category"`
	Images      *[]string          `json:"images"`
	Specs       *map[string]string `json:"specs"`
	Featured    *bool              `json:"featured"`
	Status      *string            `json:"status"`
}

// PUT /api/products/:id — absent fields leave the stored columns untouched.
func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload productUpdatePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	in := services.ProductUpdate{
		Name:        payload.Name,
		Summary:     payload.Summary,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Featured:    payload.Featured,
		Status:      payload.Status,
	}
	if payload.Images != nil {
		in.Images = *payload.Images
		in.ImagesSet = true
	}
	if payload.Specs != nil {
		in.Specs = *payload.Specs
		in.SpecsSet = true
	}

	product, err := productService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, product)
}

// DELETE /api/products/:id
func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := productService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// GET /api/reports/catalog — PDF export of the filtered product list.
func ExportCatalog(c *gin.Context) {
	svc := services.CatalogService{
		Repo:      repositories.ProductRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.ExportCatalog(
		strings.TrimSpace(c.Query("q")),
		strings.TrimSpace(c.Query("category")),
		strings.TrimSpace(c.Query("status")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
