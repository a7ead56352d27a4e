package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"umrah-backend/internal/domain/models"
	"umrah-backend/internal/repositories"
	"umrah-backend/internal/utils"
)

// DocsService menghasilkan PDF quotation per custom package.
type DocsService struct {
	PackageRepo repositories.PackageRepository
	RequestID   string
	Loader      func(int64) (models.CustomPackage, error)
}

func (s DocsService) loadPackage(id int64) (models.CustomPackage, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.PackageRepo.GetByID(id)
}

// GenerateQuotation merender rincian biaya paket jadi PDF siap kirim ke
// customer. Mengembalikan isi file plus nama file yang disarankan.
func (s DocsService) GenerateQuotation(packageID int64) ([]byte, string, error) {
	p, err := s.loadPackage(packageID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_quotation", fmt.Sprintf("package_id=%d", packageID))
	return buildQuotationPDF(p)
}

func buildQuotationPDF(p models.CustomPackage) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "UMRAH PACKAGE QUOTATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Query Number : %s", safeDoc(p.QueryNumber, "-")),
		fmt.Sprintf("Customer     : %s", safeDoc(p.CustomerName, "-")),
		fmt.Sprintf("Phone        : %s", safeDoc(p.CustomerPhone, "-")),
		fmt.Sprintf("Passengers   : %d adult, %d child, %d infant", p.Adults, p.Children, p.Infants),
		fmt.Sprintf("Visa Type    : %s", safeDoc(p.VisaTypeName, "-")),
		fmt.Sprintf("Services     : %s", safeDoc(strings.ReplaceAll(p.BookingOptions, ",", ", "), "-")),
		fmt.Sprintf("Date         : %s", time.Now().Format("2006-01-02")),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian biaya:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	writeQuotationRow(pdf, "Visa", p.VisaTotal)
	for _, d := range p.HotelDetails {
		label := fmt.Sprintf("Hotel %s (%d malam)", safeDoc(d.HotelName, "-"), d.Nights)
		if d.Self {
			label += " [self]"
		}
		writeQuotationRow(pdf, label, d.Cost)
	}
	for _, d := range p.TransportDetails {
		label := "Transport " + safeDoc(d.SectorName, "-")
		if d.Self {
			label += " [self]"
		}
		writeQuotationRow(pdf, label, d.Cost)
	}
	for _, d := range p.TicketDetails {
		writeQuotationRow(pdf, fmt.Sprintf("Tiket %s -> %s (%s)",
			safeDoc(d.FromCity, "-"), safeDoc(d.ToCity, "-"), safeDoc(d.TripType, "-")), d.Price)
	}
	for _, d := range p.FoodDetails {
		writeQuotationRow(pdf, "Katering "+safeDoc(d.Name, "-"), d.Cost)
	}
	for _, d := range p.ZiaratDetails {
		writeQuotationRow(pdf, "Ziarat "+safeDoc(d.Name, "-"), d.Cost)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Grand Total: "+utils.FormatRiyal(p.GrandTotal))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Harga dalam SAR dan dapat berubah mengikuti tarif vendor. Quotation berlaku 7 hari sejak tanggal terbit.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("QUOTATION_%d_%s.pdf", p.ID, docFilenamePart(utils.FirstNonEmpty(p.QueryNumber, p.CustomerName)))
	return buf.Bytes(), filename, nil
}

func writeQuotationRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(130, 6, label)
	pdf.CellFormat(0, 6, utils.FormatRiyal(amount), "", 0, "R", false, 0, "")
	pdf.Ln(6)
}

func safeDoc(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func docFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
