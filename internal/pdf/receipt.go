package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"clientdesk/internal/models"
)

// ReceiptGenerator renders payment receipts under RootDir. File names are
// random so a receipt URL cannot be guessed from a payment id.
type ReceiptGenerator struct {
	RootDir string
}

func NewReceiptGenerator(rootDir string) *ReceiptGenerator {
	return &ReceiptGenerator{RootDir: filepath.Clean(rootDir)}
}

// Render writes the receipt PDF and returns its public path.
func (g *ReceiptGenerator) Render(payment *models.Payment, customer *models.Customer) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename := fmt.Sprintf("receipt_%s.pdf", uuid.NewString())
	absPath := filepath.Join(g.RootDir, filename)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment receipt", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "PAYMENT RECEIPT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, payment.CreatedAt.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.kvLine(pdf, "Customer", customer.Name)
	g.kvLine(pdf, "Amount", fmt.Sprintf("%.2f", payment.Amount))
	g.kvLine(pdf, "Method", payment.Method)
	g.kvLine(pdf, "Status", string(payment.Status))
	if payment.DealID != nil {
		g.kvLine(pdf, "Deal", fmt.Sprintf("#%d", *payment.DealID))
	}
	if payment.Description != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, payment.Description, "", "L", false)
	}
	pdf.Ln(2)
	g.hr(pdf)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return "/files/" + filename, nil
}

func (g *ReceiptGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReceiptGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
