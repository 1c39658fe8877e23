package service

import (
	"errors"

	"finman/models"

	"gorm.io/gorm"
)

// ExpenseInput 创建/更新支出的入参，更新为全量替换语义
type ExpenseInput struct {
	CategoryID    uint
	Amount        float64
	Description   string
	Date          string
	PaymentMethod string
}

// ExpenseService 支出增删改查
type ExpenseService struct {
	db *gorm.DB
}

// NewExpenseService 创建支出服务
func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// List 列出指定月份的支出，附带类别名称
// 按日期倒序、同日按 id 倒序；month 为空时取当前自然月
func (s *ExpenseService) List(month string) ([]models.ExpenseWithCategory, error) {
	if month == "" {
		month = CurrentMonth()
	}
	if !ValidMonth(month) {
		return nil, &ValidationError{Message: "Invalid month format. Use YYYY-MM"}
	}

	var list []models.ExpenseWithCategory
	err := s.db.Model(&models.Expense{}).
		Select("expenses.*, categories.name AS category_name").
		Joins("JOIN categories ON expenses.category_id = categories.id").
		Where("DATE_FORMAT(expenses.date, '%Y-%m') = ?", month).
		Order("expenses.date DESC, expenses.id DESC").
		Scan(&list).Error
	if err != nil {
		return nil, &StorageError{Op: "查询支出列表", Err: err}
	}
	if list == nil {
		list = []models.ExpenseWithCategory{}
	}
	return list, nil
}

// validate 公共字段校验，返回清洗后的记录
func (s *ExpenseService) validate(in ExpenseInput) (*models.Expense, error) {
	if in.CategoryID == 0 {
		return nil, &ValidationError{Message: "Missing required field: category_id"}
	}
	if in.Amount < 0 {
		return nil, &ValidationError{Message: "Amount must not be negative"}
	}

	description := SanitizeText(in.Description)
	if description == "" {
		return nil, &ValidationError{Message: "Missing required field: description"}
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}

	if !models.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, &ValidationError{Message: "Invalid payment method"}
	}

	return &models.Expense{
		CategoryID:    in.CategoryID,
		Amount:        in.Amount,
		Description:   description,
		Date:          date,
		PaymentMethod: in.PaymentMethod,
	}, nil
}

// Create 创建支出记录
func (s *ExpenseService) Create(in ExpenseInput) (*models.Expense, error) {
	expense, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &ValidationError{Message: "Category does not exist"}
		}
		return nil, &StorageError{Op: "创建支出", Err: err}
	}
	return expense, nil
}

// Update 全量更新支出记录，所有字段必填
func (s *ExpenseService) Update(id uint, in ExpenseInput) (*models.Expense, error) {
	if id == 0 {
		return nil, &ValidationError{Message: "Missing required field: id"}
	}
	expense, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	var existing models.Expense
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Expense not found"}
		}
		return nil, &StorageError{Op: "查询支出", Err: err}
	}

	updates := map[string]interface{}{
		"category_id":    expense.CategoryID,
		"amount":         expense.Amount,
		"description":    expense.Description,
		"date":           expense.Date,
		"payment_method": expense.PaymentMethod,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &ValidationError{Message: "Category does not exist"}
		}
		return nil, &StorageError{Op: "更新支出", Err: err}
	}

	expense.ID = existing.ID
	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = existing.UpdatedAt
	return expense, nil
}

// Delete 删除支出记录
func (s *ExpenseService) Delete(id uint) error {
	if id == 0 {
		return &ValidationError{Message: "Expense ID is required"}
	}

	res := s.db.Delete(&models.Expense{}, id)
	if res.Error != nil {
		return &StorageError{Op: "删除支出", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Expense not found"}
	}
	return nil
}
