package api

import (
	"errors"
	"net/http"

	"finman/config"
	"finman/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Error string `json:"error" example:"Category not found"`
}

// Error 错误响应，响应体固定为 {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// MethodNotAllowed 405 错误响应
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ServiceError 将 service 层错误分类映射为 HTTP 状态码
// 校验/冲突/保护/上限 -> 400，未找到 -> 404，存储失败 -> 500
func ServiceError(c *gin.Context, err error) {
	var (
		validation *service.ValidationError
		conflict   *service.ConflictError
		protected  *service.ProtectedEntityError
		limit      *service.LimitError
		notFound   *service.NotFoundError
		storage    *service.StorageError
	)
	switch {
	case errors.As(err, &validation):
		BadRequest(c, validation.Message)
	case errors.As(err, &conflict):
		BadRequest(c, conflict.Message)
	case errors.As(err, &protected):
		BadRequest(c, protected.Message)
	case errors.As(err, &limit):
		BadRequest(c, limit.Message)
	case errors.As(err, &notFound):
		NotFound(c, notFound.Message)
	case errors.As(err, &storage):
		InternalError(c, config.SafeErrorMessage(storage.Err, "Storage operation failed"))
	default:
		InternalError(c, config.SafeErrorMessage(err, "Internal server error"))
	}
}
