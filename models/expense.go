package models

import "time"

// Expense 支出记录
type Expense struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CategoryID    uint      `json:"category_id" gorm:"not null;index"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description   string    `json:"description" gorm:"size:255;not null"`
	Date          Date      `json:"date" gorm:"type:date;not null;index"`
	PaymentMethod string    `json:"payment_method" gorm:"size:20;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Category      Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseWithCategory 支出列表行，附带类别名称
type ExpenseWithCategory struct {
	Expense
	CategoryName string `json:"category_name"`
}

// 支付方式常量
const (
	PaymentCash       = "cash"
	PaymentOnline     = "online"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
)

// PaymentMethods 获取所有支付方式
func PaymentMethods() []string {
	return []string{
		PaymentCash,
		PaymentOnline,
		PaymentCreditCard,
		PaymentDebitCard,
	}
}

// IsValidPaymentMethod 校验支付方式是否合法
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods() {
		if m == method {
			return true
		}
	}
	return false
}
