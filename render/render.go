// Package render turns a set of reservation records into the byte formats
// the API serves: HTML table rows for the UI, a single-record PDF voucher,
// an SVG summary and an XLSX workbook. Every renderer is a stateless single
// pass over its input and never reorders it.
package render

import (
	"strings"

	"github.com/solriso/reservation-service/models"
)

// SimNao renders a boolean the way the UI has always shown it.
func SimNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// orNA substitutes the literal placeholder for missing optional text, so a
// voucher never shows a blank or the word "null".
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func dateOrNA(d *models.Date) string {
	if d == nil || d.IsZero() {
		return "N/A"
	}
	return d.String()
}
