package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/solriso/reservation-service/models"
)

const (
	svgWidth  = 800
	svgHeight = 600
	rowStride = 120 // six text lines per record, 20px apart
)

// SummarySVG writes the all-records summary on a fixed 800x600 canvas.
// Records past the nominal height simply extend below it; the document stays
// well-formed either way. Text content is XML-escaped by the svg writer.
func SummarySVG(w io.Writer, list []models.Reservation) {
	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	canvas.Text(10, 20, "Reservas:", "font-family:Arial;font-size:20px")

	const style = "font-family:Arial;font-size:14px"
	y := 50
	for _, r := range list {
		canvas.Text(10, y, "Nome: "+r.GuestName, style)
		canvas.Text(10, y+20, "Telefone: "+r.Phone, style)
		canvas.Text(10, y+40, "Quarto: "+r.Room, style)
		canvas.Text(10, y+60, "Check-in: "+r.CheckIn.String(), style)
		canvas.Text(10, y+80, "Check-out: "+r.CheckOut.String(), style)
		canvas.Text(10, y+100, "Café da manhã: "+SimNao(r.Breakfast), style)
		y += rowStride
	}
	canvas.End()
}
