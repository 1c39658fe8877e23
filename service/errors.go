package service

// 错误分类：api 层通过 errors.As 将其映射为 HTTP 状态码
// 校验、冲突、保护、上限 -> 400；未找到 -> 404；存储 -> 500

// ValidationError 参数缺失或格式错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError 唯一性冲突
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ProtectedEntityError 试图修改或删除受保护的默认类别
type ProtectedEntityError struct {
	Message string
}

func (e *ProtectedEntityError) Error() string { return e.Message }

// LimitError 超出类别数量上限
type LimitError struct {
	Message string
}

func (e *LimitError) Error() string { return e.Message }

// NotFoundError 更新或删除未命中任何行
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StorageError 底层存储失败
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
