package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"finman/database"
	"finman/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 月度报表导出接口
type ExportHandler struct {
	expenses *service.ExpenseService
	summary  *service.SummaryService
}

// NewExportHandler 创建导出接口处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{
		expenses: service.NewExpenseService(database.DB),
		summary:  service.NewSummaryService(database.DB),
	}
}

// ExportCSV 导出支出为 CSV
// @Summary 导出支出为 CSV
// @Description 导出指定月份的全部支出记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = service.CurrentMonth()
	}

	list, err := h.expenses.List(month)
	if err != nil {
		ServiceError(c, err)
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 直接打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Date", "Category", "Description", "Payment Method", "Amount"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	for _, e := range list {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.String(),
			e.CategoryName,
			e.Description,
			e.PaymentMethod,
			fmt.Sprintf("%.2f", e.Amount),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出月度报表为 Excel
// @Summary 导出月度报表为 Excel
// @Description 导出指定月份的支出明细与预算对比两个工作表
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = service.CurrentMonth()
	}

	list, err := h.expenses.List(month)
	if err != nil {
		ServiceError(c, err)
		return
	}
	summary, err := h.summary.Month(month)
	if err != nil {
		ServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Date", "Category", "Description", "Payment Method", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var total float64
	for i, e := range list {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Date.String())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.CategoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), e.Amount)
		total += e.Amount
	}
	totalRow := len(list) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), total)

	// 预算对比工作表
	summarySheet := "Budget vs Actual"
	f.NewSheet(summarySheet)
	summaryHeaders := []string{"Category", "Budget", "Spent", "Remaining"}
	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, header)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}
	for i, row := range summary.Categories {
		r := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row.CategoryName)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), row.Budget)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", r), row.Spent)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", r), row.Budget-row.Spent)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("report_%s.xlsx", month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
