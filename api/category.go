package api

import (
	"net/http"
	"strconv"

	"finman/database"
	"finman/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 类别接口
type CategoryHandler struct {
	svc *service.CategoryService
}

// NewCategoryHandler 创建类别接口处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{svc: service.NewCategoryService(database.DB)}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required" example:"Food"`
}

// CategoryUpdateRequest 更新类别请求
type CategoryUpdateRequest struct {
	ID   uint   `json:"id" binding:"required" example:"2"`
	Name string `json:"name" binding:"required" example:"Groceries"`
}

// List 获取类别列表
// @Summary 获取类别列表
// @Description 获取所有消费类别，按名称排序
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category "类别列表"
// @Failure 500 {object} ErrorResponse "存储失败"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建新的消费类别，除默认类别外最多 6 个，名称唯一
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 201 {object} models.Category "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误/名称冲突/超出上限"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing required field: name")
		return
	}

	cat, err := h.svc.Create(req.Name)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// Update 重命名类别
// @Summary 重命名类别
// @Description 修改类别名称，默认类别不可修改
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryUpdateRequest true "类别信息"
// @Success 200 {object} models.Category "更新成功"
// @Failure 400 {object} ErrorResponse "参数错误/名称冲突/受保护类别"
// @Failure 404 {object} ErrorResponse "类别不存在"
// @Router /api/v1/categories [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing required field: id or name")
		return
	}

	cat, err := h.svc.Update(req.ID, req.Name)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete 删除类别（级联）
// @Summary 删除类别
// @Description 删除类别及其全部预算和支出，三者在同一事务中完成
// @Tags 类别
// @Produce json
// @Param id query int true "类别ID"
// @Success 200 {object} map[string]interface{} "删除成功，含删除统计"
// @Failure 400 {object} ErrorResponse "缺少ID/受保护类别"
// @Failure 404 {object} ErrorResponse "类别不存在"
// @Router /api/v1/categories [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Query("id"), 10, 32)

	deleted, err := h.svc.Delete(uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Category deleted successfully",
		"deleted_data": deleted,
	})
}
