package service

import (
	"gorm.io/gorm"
)

// CategorySummary 单个类别的预算与实际支出对比
type CategorySummary struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
}

// MonthSummary 整月汇总，图表与报表导出共用
type MonthSummary struct {
	Month       string            `json:"month"`
	Categories  []CategorySummary `json:"categories"`
	TotalBudget float64           `json:"total_budget"`
	TotalSpent  float64           `json:"total_spent"`
}

// SummaryService 按月统计预算与实际支出
type SummaryService struct {
	db *gorm.DB
}

// NewSummaryService 创建统计服务
func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// Month 统计指定月份各类别的预算与支出总额
// 没有预算行的类别 budget 计 0，没有支出的类别 spent 计 0
func (s *SummaryService) Month(month string) (*MonthSummary, error) {
	if month == "" {
		month = CurrentMonth()
	}
	if !ValidMonth(month) {
		return nil, &ValidationError{Message: "Invalid month format. Use YYYY-MM"}
	}

	var rows []CategorySummary
	err := s.db.Raw(`
		SELECT c.id AS category_id,
		       c.name AS category_name,
		       COALESCE(b.amount, 0) AS budget,
		       COALESCE((
		           SELECT SUM(e.amount) FROM expenses e
		           WHERE e.category_id = c.id AND DATE_FORMAT(e.date, '%Y-%m') = ?
		       ), 0) AS spent
		FROM categories c
		LEFT JOIN budgets b ON b.category_id = c.id AND b.month = ?
		ORDER BY c.name ASC`, month, month).Scan(&rows).Error
	if err != nil {
		return nil, &StorageError{Op: "查询月度汇总", Err: err}
	}
	if rows == nil {
		rows = []CategorySummary{}
	}

	summary := &MonthSummary{Month: month, Categories: rows}
	for _, row := range rows {
		summary.TotalBudget += row.Budget
		summary.TotalSpent += row.Spent
	}
	return summary, nil
}
