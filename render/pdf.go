package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/solriso/reservation-service/models"
)

// VoucherPDF writes the single-record confirmation document. The layout is
// fixed: logo (skipped silently when the image file is absent), title, guest
// section, reservation section, value, closing message.
func VoucherPDF(w io.Writer, r *models.Reservation, logoPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(18, 12, 18)
	pdf.AddPage()

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, 18, 10, 42, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 25)
	pdf.CellFormat(0, 28, tr("Voucher da Reserva"), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(80, 80, 80)
	pdf.Line(18, pdf.GetY(), 192, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Dados do Hóspede"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	guestLines := []string{
		"Nome: " + orNA(r.GuestName),
		"Telefone: " + orNA(r.Phone),
		"CPF: " + orNA(r.CPF),
		"Email: " + orNA(r.Email),
		fmt.Sprintf("Endereço: %s, %s, %s, %s - CEP: %s",
			orNA(r.Street), orNA(r.District), orNA(r.City), orNA(r.State), orNA(r.CEP)),
	}
	for _, line := range guestLines {
		pdf.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Dados da Reserva"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Número do Quarto: " + orNA(r.Room),
		"Data de Check-in: " + r.CheckIn.String(),
		"Data de Check-out: " + r.CheckOut.String(),
		"Café da Manhã: " + SimNao(r.Breakfast),
		"Estacionamento: " + SimNao(r.Parking),
	}
	if stay := r.ParkingStay(); stay != nil {
		lines = append(lines,
			"Entrada do Estacionamento: "+dateOrNA(stay.Entry),
			"Saída do Estacionamento: "+dateOrNA(stay.Exit),
		)
	}
	lines = append(lines, "Valor da Reserva: "+r.Value.Display())
	for _, line := range lines {
		pdf.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.Line(18, pdf.GetY(), 192, pdf.GetY())
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 8,
		tr("Obrigado por escolher nossa pousada. Desejamos uma excelente estadia!"),
		"", "C", false)

	return pdf.Output(w)
}
