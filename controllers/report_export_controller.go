package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/Sreehari-23/LinkLedger/config"
	"github.com/Sreehari-23/LinkLedger/utils"
)

type earningsRow struct {
	ID          uint
	CreatedAt   time.Time
	Username    string
	ProductName string
	LinkCode    string
	Amount      decimal.Decimal
	Commission  decimal.Decimal
}

type earningsSummary struct {
	TotalConversions int
	TotalAffiliates  int
	TotalRevenue     decimal.Decimal
	TotalCommission  decimal.Decimal
}

// periodRange resolves the day/week/month/custom query params into a
// concrete date window
func periodRange(c *gin.Context) (string, time.Time, time.Time, bool) {
	period := c.DefaultQuery("period", "day")
	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	case "custom":
		startStr := c.Query("start_date")
		endStr := c.Query("end_date")
		if startStr == "" || endStr == "" {
			utils.BadRequest(c, "Missing date range", "Both start_date and end_date are required for custom period")
			return period, startDate, endDate, false
		}
		var err error
		startDate, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			utils.BadRequest(c, "Invalid start date", "Start date must be in YYYY-MM-DD format")
			return period, startDate, endDate, false
		}
		endDate, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			utils.BadRequest(c, "Invalid end date", "End date must be in YYYY-MM-DD format")
			return period, startDate, endDate, false
		}
		endDate = endDate.Add(24 * time.Hour)
		if endDate.Before(startDate) {
			utils.BadRequest(c, "Invalid date range", "End date must be after start date")
			return period, startDate, endDate, false
		}
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, month, or custom")
		return period, startDate, endDate, false
	}

	return period, startDate, endDate, true
}

func earningsReportData(startDate, endDate time.Time) ([]earningsRow, earningsSummary, error) {
	var rows []earningsRow
	err := config.DB.Table("conversions").
		Select("conversions.id, conversions.created_at, users.username, products.name AS product_name, affiliate_links.link_code, conversions.amount, conversions.commission").
		Joins("JOIN affiliate_links ON affiliate_links.id = conversions.link_id").
		Joins("JOIN users ON users.id = affiliate_links.user_id").
		Joins("JOIN products ON products.id = affiliate_links.product_id").
		Where("conversions.created_at >= ? AND conversions.created_at <= ?", startDate, endDate).
		Order("conversions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, earningsSummary{}, err
	}

	summary := earningsSummary{
		TotalRevenue:    decimal.Zero,
		TotalCommission: decimal.Zero,
	}
	affiliates := make(map[string]bool)
	for _, row := range rows {
		summary.TotalConversions++
		summary.TotalRevenue = summary.TotalRevenue.Add(row.Amount)
		summary.TotalCommission = summary.TotalCommission.Add(row.Commission)
		affiliates[row.Username] = true
	}
	summary.TotalAffiliates = len(affiliates)

	return rows, summary, nil
}

// Admin: Download earnings report as Excel
func DownloadEarningsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadEarningsReportExcel called")

	period, startDate, endDate, ok := periodRange(c)
	if !ok {
		return
	}

	rows, summary, err := earningsReportData(startDate, endDate)
	if err != nil {
		utils.LogError("Failed to fetch conversions: %v", err)
		utils.InternalServerError(c, "Failed to fetch conversions", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d conversions for Excel report", len(rows))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Earnings Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("LINKLEDGER - Earnings Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Conversion ID", "Date", "Affiliate", "Product", "Link Code", "Amount", "Commission"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().SetInt(int(row.ID))
		r.AddCell().SetString(row.CreatedAt.Format("2006-01-02 15:04"))
		r.AddCell().SetString(row.Username)
		r.AddCell().SetString(row.ProductName)
		r.AddCell().SetString(row.LinkCode)
		r.AddCell().SetString(row.Amount.StringFixed(2))
		r.AddCell().SetString(row.Commission.StringFixed(2))
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Conversions", fmt.Sprintf("%d", summary.TotalConversions)},
		{"Total Affiliates", fmt.Sprintf("%d", summary.TotalAffiliates)},
		{"Total Revenue", summary.TotalRevenue.StringFixed(2)},
		{"Total Commission", summary.TotalCommission.StringFixed(2)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=earnings_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}

// Admin: Download earnings report as PDF
func DownloadEarningsReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadEarningsReportPDF called")

	period, startDate, endDate, ok := periodRange(c)
	if !ok {
		return
	}

	rows, summary, err := earningsReportData(startDate, endDate)
	if err != nil {
		utils.LogError("Failed to fetch conversions: %v", err)
		utils.InternalServerError(c, "Failed to fetch conversions", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d conversions for PDF report", len(rows))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "LINKLEDGER - Earnings Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Affiliate Commission Ledger")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+startDate.Format("2006-01-02")+" to "+endDate.Format("2006-01-02"))
	pdf.Ln(10)

	headers := []string{"ID", "Date", "Affiliate", "Product", "Link Code", "Amount", "Commission"}
	colWidths := []float64{20, 35, 45, 55, 35, 30, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, row := range rows {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", row.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, row.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, row.Username, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, row.ProductName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, row.LinkCode, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, row.Amount.StringFixed(2), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, row.Commission.StringFixed(2), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(50, 8, "Total Conversions", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.TotalConversions), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Affiliates", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.TotalAffiliates), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Revenue", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, summary.TotalRevenue.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Commission", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, summary.TotalCommission.StringFixed(2), "1", 0, "R", false, 0, "")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=earnings_report_%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF report for period %s", period)
}
