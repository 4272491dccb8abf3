package infra

// pdf.go — adoption contract generation using go-pdf/fpdf.
// Renders an A4 contract with the shelter header, adopter and animal data,
// the contract body, the agreed conditions and a signature block. The file
// is written to storagePath/contrato_{adopcionID}.pdf and later attached to
// the approval email and served by the contract download endpoint.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

// GenerateContratoPDF renders the signed-adoption contract for a finalized
// adopcion. Returns the absolute path of the generated file.
func GenerateContratoPDF(a *model.Adopcion, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("contrato_%s.pdf", a.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Refugio de Animales", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Contrato de Adopcion", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Datos ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Expediente: %s", a.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if a.FechaFirma != nil {
		pdf.CellFormat(contentW, 5, "Fecha de firma: "+a.FechaFirma.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	if a.Animal != nil {
		pdf.CellFormat(contentW, 5, "Animal: "+a.Animal.Nombre, "", 1, "L", false, 0, "")
	}
	if a.Usuario != nil {
		pdf.CellFormat(contentW, 5, "Adoptante: "+a.Usuario.Alias+" <"+a.Usuario.Email+">", "", 1, "L", false, 0, "")
	}
	if a.DireccionAdoptante != nil {
		pdf.CellFormat(contentW, 5, "Domicilio: "+*a.DireccionAdoptante, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(3)

	// ── Cuerpo del contrato ──────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	if a.Contrato != nil {
		pdf.MultiCell(contentW, 5, *a.Contrato, "", "J", false)
		pdf.Ln(3)
	}

	if a.Condiciones != nil {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Condiciones", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentW, 5, *a.Condiciones, "", "J", false)
		pdf.Ln(3)
	}

	// ── Firmas ───────────────────────────────────────────────────────────────
	pdf.Ln(12)
	half := contentW / 2
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(half, 5, "_______________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 5, "_______________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(half, 5, "Adoptante", "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 5, "Refugio", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
