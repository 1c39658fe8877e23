package models

import "time"

// Budget 月度预算，同一类别同一月份最多一条
// 唯一性由 (category_id, month) 组合唯一索引在数据库层保证
type Budget struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_budgets_category_month"`
	Amount     float64   `json:"amount" gorm:"type:decimal(10,2);not null;default:0"`
	Month      string    `json:"month" gorm:"size:7;not null;uniqueIndex:idx_budgets_category_month"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Category   Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// BudgetWithCategory 预算列表行，附带类别名称
type BudgetWithCategory struct {
	Budget
	CategoryName string `json:"category_name"`
}
