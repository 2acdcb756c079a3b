// Package export renders booking listings as spreadsheets.
package export

import (
	"fmt"
	"io"
	"staybook/pkg/model"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Bookings"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{
	"Booking ID",
	"User ID",
	"Hotel ID",
	"Hotel",
	"Location",
	"Check-in",
	"Check-out",
	"Guests",
	"Total Price",
	"Status",
	"Rating",
	"Created At",
}

// FileName returns the attachment name for an export taken at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("bookings_%s.xlsx", now.UTC().Format("20060102_150405"))
}

// WriteBookings writes one header row and one row per booking.
func WriteBookings(w io.Writer, views []*model.BookingView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetCellStyle(SheetName, "A1", lastCol+"1", style)

	for i, v := range views {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			v.ID,
			v.UserID,
			v.Hotel.ID,
			v.Hotel.Name,
			v.Hotel.Location,
			v.CheckIn.Format(time.DateOnly),
			v.CheckOut.Format(time.DateOnly),
			v.Guests,
			v.TotalPrice,
			v.Status,
			"",
			v.CreatedAt.UTC().Format(time.RFC3339),
		}
		if v.UserRating != nil {
			row[10] = *v.UserRating
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "C", 26)
	_ = f.SetColWidth(SheetName, "D", "E", 24)
	_ = f.SetColWidth(SheetName, "F", lastCol, 14)
	_ = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
