package models

import "time"

const (
	// ProtectedCategoryName 默认类别名称，初始化时自动创建，不可改名、不可删除
	ProtectedCategoryName = "Others"

	// MaxUserCategories 除默认类别外最多允许创建的类别数
	MaxUserCategories = 6
)

// Category 消费类别
// IsProtected 标记受保护的默认类别，所有保护判断以该字段为准，不依赖固定 ID
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	IsProtected bool      `json:"is_protected" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
