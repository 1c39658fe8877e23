package service

import (
	"errors"
	"fmt"

	"finman/models"

	"gorm.io/gorm"
)

// CategoryService 类别增删改查，负责级联删除的原子性
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService 创建类别服务
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// DeletedData 级联删除的统计结果，返回给前端展示
type DeletedData struct {
	Expenses int64 `json:"expenses"`
	Budgets  int64 `json:"budgets"`
}

// List 列出所有类别，按名称排序
func (s *CategoryService) List() ([]models.Category, error) {
	var list []models.Category
	if err := s.db.Order("name ASC").Find(&list).Error; err != nil {
		return nil, &StorageError{Op: "查询类别列表", Err: err}
	}
	if list == nil {
		list = []models.Category{}
	}
	return list, nil
}

// Create 创建类别
// 非默认类别数量达到上限后拒绝，名称大小写敏感唯一
func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = SanitizeText(name)
	if name == "" {
		return nil, &ValidationError{Message: "Missing required field: name"}
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("is_protected = ?", false).Count(&count).Error; err != nil {
		return nil, &StorageError{Op: "统计类别数量", Err: err}
	}
	if count >= models.MaxUserCategories {
		return nil, &LimitError{Message: fmt.Sprintf("Maximum number of categories (%d) reached", models.MaxUserCategories)}
	}

	cat := models.Category{Name: name}
	if err := s.db.Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Category already exists"}
		}
		return nil, &StorageError{Op: "创建类别", Err: err}
	}
	return &cat, nil
}

// Update 重命名类别，受保护类别拒绝修改
func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	if id == 0 {
		return nil, &ValidationError{Message: "Missing required field: id"}
	}
	name = SanitizeText(name)
	if name == "" {
		return nil, &ValidationError{Message: "Missing required field: name"}
	}

	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Category not found"}
		}
		return nil, &StorageError{Op: "查询类别", Err: err}
	}
	if cat.IsProtected {
		return nil, &ProtectedEntityError{Message: fmt.Sprintf("Cannot modify %q category", cat.Name)}
	}

	if err := s.db.Model(&cat).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Category name already exists"}
		}
		return nil, &StorageError{Op: "更新类别", Err: err}
	}
	return &cat, nil
}

// Delete 删除类别及其全部预算、支出
// 三次删除在同一事务中执行；类别行未命中则整体回滚，之前的删除不落库
func (s *CategoryService) Delete(id uint) (*DeletedData, error) {
	if id == 0 {
		return nil, &ValidationError{Message: "Category ID is required"}
	}

	var cat models.Category
	err := s.db.First(&cat, id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StorageError{Op: "查询类别", Err: err}
	}
	if err == nil && cat.IsProtected {
		return nil, &ProtectedEntityError{Message: fmt.Sprintf("Cannot delete %q category", cat.Name)}
	}

	deleted := &DeletedData{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 删除顺序：先支出、再预算、最后类别本身
		res := tx.Where("category_id = ?", id).Delete(&models.Expense{})
		if res.Error != nil {
			return res.Error
		}
		deleted.Expenses = res.RowsAffected

		res = tx.Where("category_id = ?", id).Delete(&models.Budget{})
		if res.Error != nil {
			return res.Error
		}
		deleted.Budgets = res.RowsAffected

		res = tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: "Category not found"}
		}
		return nil
	})
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, nf
		}
		return nil, &StorageError{Op: "删除类别", Err: err}
	}
	return deleted, nil
}
