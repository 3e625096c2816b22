package render

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/solriso/reservation-service/models"
)

const sheetName = "Reservas"

// Workbook writes the all-records spreadsheet: one localized header row,
// one row per record, every value as the exact display string the UI shows.
func Workbook(w io.Writer, list []models.Reservation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	header := []any{
		"Nome do Hóspede", "Telefone", "Número do Quarto",
		"Data de Check-in", "Data de Check-out", "Café da Manhã",
		"Estacionamento", "Valor da Reserva",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.GuestName, r.Phone, r.Room,
			r.CheckIn.String(), r.CheckOut.String(), SimNao(r.Breakfast),
			SimNao(r.Parking), r.Value.String(),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
