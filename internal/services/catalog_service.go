package services

import (
	"bytes"
	"fmt"
	"time"

	"medsales/internal/repositories"
	"medsales/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// CatalogService renders the filtered product list as a printable PDF for
// the admin console.
type CatalogService struct {
	Repo      repositories.ProductRepository
	RequestID string
}

func (s CatalogService) ExportCatalog(q, category, status string) ([]byte, string, error) {
	products, err := s.Repo.ListAll(productFilter(q, category, status))
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "catalog", "export", fmt.Sprintf("products=%d", len(products)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Product Catalog", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PRODUCT CATALOG")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(75, 8, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range products {
		name := p.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		pdf.CellFormat(75, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, p.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", p.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, p.Status, "1", 1, "L", false, 0, "")
	}

	if len(products) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "No products match the current filter.")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("product-catalog-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
