package report

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	calendarSheet = "calendar"
	summarySheet  = "summary"
)

// MonthCalendarXLSX renders a calendar sheet with one row per day and a summary sheet.
func MonthCalendarXLSX(cal report.MonthCalendarReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", calendarSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	offStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#EEEEEE"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Date", "Day", "Type", "Holiday"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(calendarSheet, cell, h)
	}
	_ = f.SetCellStyle(calendarSheet, "A1", "D1", headerStyle)
	_ = f.SetColWidth(calendarSheet, "A", "C", 14)
	_ = f.SetColWidth(calendarSheet, "D", "D", 32)

	for i, day := range cal.Days {
		row := i + 2
		_ = f.SetCellValue(calendarSheet, fmt.Sprintf("A%d", row), day.Date)
		_ = f.SetCellValue(calendarSheet, fmt.Sprintf("B%d", row), day.Weekday)
		_ = f.SetCellValue(calendarSheet, fmt.Sprintf("C%d", row), day.Kind())
		_ = f.SetCellValue(calendarSheet, fmt.Sprintf("D%d", row), day.HolidayName)
		if !day.IsWorkingDay {
			_ = f.SetCellStyle(calendarSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), offStyle)
		}
	}

	summary := [][]interface{}{
		{"Month", cal.Label},
		{"Financial Year", cal.FinancialYear},
		{"Weekends", cal.WeekendPolicy},
		{"Total Days", cal.Summary.TotalDays},
		{"Working Days", cal.Summary.WorkingDays},
		{"Weekend Days", cal.Summary.WeekendDays},
		{"Holidays", cal.Summary.Holidays},
		{"Generated", cal.GeneratedAt},
	}
	for i, row := range summary {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	_ = f.SetColWidth(summarySheet, "A", "B", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthCalendarPDF renders the month as a single table.
func MonthCalendarPDF(cal report.MonthCalendarReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Working Calendar - %s", cal.Label))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Financial Year: %s", cal.FinancialYear))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Weekends: %s", cal.WeekendPolicy))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Working Days: %d   Weekend Days: %d   Holidays: %d",
		cal.Summary.WorkingDays, cal.Summary.WeekendDays, cal.Summary.Holidays))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Day", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 6, "Holiday", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(238, 238, 238)
	for _, day := range cal.Days {
		fill := !day.IsWorkingDay
		pdf.CellFormat(30, 6, day.Date, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(30, 6, day.Weekday, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 6, day.Kind(), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(85, 6, day.HolidayName, "1", 0, "L", fill, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
