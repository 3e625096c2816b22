package render

import (
	"html/template"
	"io"

	"github.com/solriso/reservation-service/models"
)

var rowsTmpl = template.Must(template.New("rows").Funcs(template.FuncMap{
	"simnao": SimNao,
}).Parse(`{{range .}}<tr><td>{{.GuestName}}</td><td>{{.Phone}}</td><td>{{.Room}}</td><td>{{.CheckIn}}</td><td>{{.CheckOut}}</td><td>{{simnao .Breakfast}}</td><td>{{simnao .Parking}}</td><td>{{.Value}}</td><td><button onclick="downloadPDF('{{.ID}}')">PDF</button></td></tr>
{{end}}`))

// TableRows writes one <tr> per record, in input order, for the UI table
// body. The PDF button is keyed by the record id.
func TableRows(w io.Writer, list []models.Reservation) error {
	return rowsTmpl.Execute(w, list)
}
