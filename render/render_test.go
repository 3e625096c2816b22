package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/solriso/reservation-service/models"
)

func sample(name string) models.Reservation {
	checkin, _ := models.ParseDate("10/02/2024")
	checkout, _ := models.ParseDate("12/02/2024")
	value, _ := models.ParseMoney("450.00")
	return models.Reservation{
		ID:        "res-1",
		GuestName: name,
		Phone:     "11 99999-0000",
		Room:      "12",
		CheckIn:   checkin,
		CheckOut:  checkout,
		Breakfast: true,
		Value:     value,
	}
}

func TestTableRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableRows(&buf, []models.Reservation{sample("Ana Silva"), sample("Pedro")}))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, "<tr>"))
	assert.Contains(t, out, "Ana Silva")
	assert.Contains(t, out, "10/02/2024")
	assert.Contains(t, out, "Sim")
	assert.Contains(t, out, "450.00")
	assert.Contains(t, out, "res-1")
	// order preserved
	assert.Less(t, strings.Index(out, "Ana Silva"), strings.Index(out, "Pedro"))
}

func TestTableRowsEscapesHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableRows(&buf, []models.Reservation{sample("<script>x</script>")}))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestTableRowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableRows(&buf, nil))
	assert.NotContains(t, buf.String(), "<tr>")
}

func TestVoucherPDFMagicHeader(t *testing.T) {
	var buf bytes.Buffer
	r := sample("Ana Silva")
	require.NoError(t, VoucherPDF(&buf, &r, ""))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestVoucherPDFMissingLogoIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	r := sample("Ana Silva")
	require.NoError(t, VoucherPDF(&buf, &r, "does/not/exist.jpg"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestVoucherPDFWithParking(t *testing.T) {
	var buf bytes.Buffer
	r := sample("Ana Silva")
	entry, _ := models.ParseDate("10/02/2024")
	r.Parking = true
	r.ParkingEntry = &entry
	// exit never recorded: renders as N/A, not a failure
	require.NoError(t, VoucherPDF(&buf, &r, ""))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSummarySVG(t *testing.T) {
	var buf bytes.Buffer
	SummarySVG(&buf, []models.Reservation{sample("Ana & Co <guests>")})
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, `width="800"`)
	assert.Contains(t, out, `height="600"`)
	assert.Contains(t, out, "Reservas:")
	assert.Contains(t, out, "Ana &amp; Co &lt;guests&gt;")
	assert.Contains(t, out, "Check-in: 10/02/2024")
	assert.Contains(t, out, "Café da manhã: Sim")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSummarySVGEmptyStillValid(t *testing.T) {
	var buf bytes.Buffer
	SummarySVG(&buf, nil)
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "<svg")
	assert.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Workbook(&buf, []models.Reservation{sample("Ana Silva")}))
	// xlsx is a zip container
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Reservas")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nome do Hóspede", rows[0][0])
	assert.Equal(t, "Ana Silva", rows[1][0])
	assert.Equal(t, "10/02/2024", rows[1][3])
	assert.Equal(t, "Sim", rows[1][5])
	assert.Equal(t, "Não", rows[1][6])
	assert.Equal(t, "450.00", rows[1][7])
}

func TestWorkbookEmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Workbook(&buf, nil))
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Reservas")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
