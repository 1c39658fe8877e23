package api

import (
	"net/http"
	"strconv"

	"finman/database"
	"finman/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算接口
type BudgetHandler struct {
	svc *service.BudgetService
}

// NewBudgetHandler 创建预算接口处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{svc: service.NewBudgetService(database.DB)}
}

// BudgetCreateRequest 创建预算请求
// amount 省略或为空时默认 0，表示"已纳入跟踪但尚未分配"
type BudgetCreateRequest struct {
	CategoryID uint     `json:"category_id" binding:"required" example:"2"`
	Amount     *float64 `json:"amount" binding:"omitempty,gte=0" example:"500"`
	Month      string   `json:"month" binding:"required" example:"2024-05"`
}

// BudgetUpdateRequest 更新预算请求，仅金额可变
type BudgetUpdateRequest struct {
	ID     uint     `json:"id" binding:"required" example:"3"`
	Amount *float64 `json:"amount" binding:"omitempty,gte=0" example:"600"`
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取指定月份的预算，附带类别名称，按类别名称排序
// @Tags 预算
// @Produce json
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {array} models.BudgetWithCategory "预算列表"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "存储失败"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Query("month"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create 创建预算
// @Summary 创建预算
// @Description 为类别创建指定月份的预算，同一类别同一月份只能有一条
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetCreateRequest true "预算信息"
// @Success 201 {object} models.Budget "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误/该月已有预算"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req BudgetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing required field: category_id or month")
		return
	}

	amount := 0.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	budget, err := h.svc.Create(req.CategoryID, amount, req.Month)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// Update 更新预算金额
// @Summary 更新预算金额
// @Description 修改预算金额，类别和月份创建后不可变
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetUpdateRequest true "预算信息"
// @Success 200 {object} models.Budget "更新成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "预算不存在"
// @Router /api/v1/budgets [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	var req BudgetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing required field: id")
		return
	}

	amount := 0.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	budget, err := h.svc.Update(req.ID, amount)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete 删除预算
// @Summary 删除预算
// @Description 删除指定预算
// @Tags 预算
// @Produce json
// @Param id query int true "预算ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 400 {object} ErrorResponse "缺少ID"
// @Failure 404 {object} ErrorResponse "预算不存在"
// @Router /api/v1/budgets [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Query("id"), 10, 32)

	if err := h.svc.Delete(uint(id)); err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
