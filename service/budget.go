package service

import (
	"errors"
	"time"

	"finman/models"

	"gorm.io/gorm"
)

// MonthLayout 月份格式 YYYY-MM
const MonthLayout = "2006-01"

// CurrentMonth 当前自然月
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// ValidMonth 严格校验月份格式，2024-13 之类直接拒绝
func ValidMonth(month string) bool {
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}

// BudgetService 预算增删改查
type BudgetService struct {
	db *gorm.DB
}

// NewBudgetService 创建预算服务
func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// List 列出指定月份的预算，附带类别名称，按类别名称排序
// month 为空时取当前自然月
func (s *BudgetService) List(month string) ([]models.BudgetWithCategory, error) {
	if month == "" {
		month = CurrentMonth()
	}
	if !ValidMonth(month) {
		return nil, &ValidationError{Message: "Invalid month format. Use YYYY-MM"}
	}

	var list []models.BudgetWithCategory
	err := s.db.Model(&models.Budget{}).
		Select("budgets.*, categories.name AS category_name").
		Joins("JOIN categories ON budgets.category_id = categories.id").
		Where("budgets.month = ?", month).
		Order("categories.name ASC").
		Scan(&list).Error
	if err != nil {
		return nil, &StorageError{Op: "查询预算列表", Err: err}
	}
	if list == nil {
		list = []models.BudgetWithCategory{}
	}
	return list, nil
}

// Create 创建预算
// (category_id, month) 的唯一性由数据库唯一索引保证，冲突返回 ConflictError
func (s *BudgetService) Create(categoryID uint, amount float64, month string) (*models.Budget, error) {
	if categoryID == 0 {
		return nil, &ValidationError{Message: "Missing required field: category_id"}
	}
	if month == "" {
		return nil, &ValidationError{Message: "Missing required field: month"}
	}
	if !ValidMonth(month) {
		return nil, &ValidationError{Message: "Invalid month format. Use YYYY-MM"}
	}
	if amount < 0 {
		return nil, &ValidationError{Message: "Amount must not be negative"}
	}

	budget := models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
	}
	if err := s.db.Create(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Budget already exists for this category and month"}
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &ValidationError{Message: "Category does not exist"}
		}
		return nil, &StorageError{Op: "创建预算", Err: err}
	}
	return &budget, nil
}

// Update 修改预算金额，category_id 和 month 创建后不可变
func (s *BudgetService) Update(id uint, amount float64) (*models.Budget, error) {
	if id == 0 {
		return nil, &ValidationError{Message: "Missing required field: id"}
	}
	if amount < 0 {
		return nil, &ValidationError{Message: "Amount must not be negative"}
	}

	var budget models.Budget
	if err := s.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Budget not found"}
		}
		return nil, &StorageError{Op: "查询预算", Err: err}
	}

	if err := s.db.Model(&budget).Update("amount", amount).Error; err != nil {
		return nil, &StorageError{Op: "更新预算", Err: err}
	}
	return &budget, nil
}

// Delete 删除预算
func (s *BudgetService) Delete(id uint) error {
	if id == 0 {
		return &ValidationError{Message: "Budget ID is required"}
	}

	res := s.db.Delete(&models.Budget{}, id)
	if res.Error != nil {
		return &StorageError{Op: "删除预算", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Budget not found"}
	}
	return nil
}
