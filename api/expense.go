package api

import (
	"net/http"
	"strconv"

	"finman/database"
	"finman/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出接口
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler 创建支出接口处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{svc: service.NewExpenseService(database.DB)}
}

// ExpenseCreateRequest 创建支出请求，所有字段必填
// amount 必须是 JSON 数字，非数字输入在绑定阶段直接拒绝，不做静默转换
type ExpenseCreateRequest struct {
	CategoryID    uint     `json:"category_id" binding:"required" example:"2"`
	Amount        *float64 `json:"amount" binding:"required,gte=0" example:"129.50"`
	Description   string   `json:"description" binding:"required" example:"Lunch"`
	Date          string   `json:"date" binding:"required" example:"2024-05-15"`
	PaymentMethod string   `json:"payment_method" binding:"required" example:"cash"`
}

// ExpenseUpdateRequest 更新支出请求，全量替换语义
type ExpenseUpdateRequest struct {
	ID uint `json:"id" binding:"required" example:"7"`
	ExpenseCreateRequest
}

// List 获取支出列表
// @Summary 获取支出列表
// @Description 获取指定月份的支出，附带类别名称，按日期和ID倒序
// @Tags 支出
// @Produce json
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {array} models.ExpenseWithCategory "支出列表"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "存储失败"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Query("month"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create 创建支出
// @Summary 创建支出
// @Description 创建一条支出记录，日期为 YYYY-MM-DD，支付方式限 cash/online/credit_card/debit_card
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body ExpenseCreateRequest true "支出信息"
// @Success 201 {object} models.Expense "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing or invalid required field")
		return
	}

	expense, err := h.svc.Create(service.ExpenseInput{
		CategoryID:    req.CategoryID,
		Amount:        *req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// Update 更新支出
// @Summary 更新支出
// @Description 全量更新一条支出记录，所有字段必填
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body ExpenseUpdateRequest true "支出信息"
// @Success 200 {object} models.Expense "更新成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "支出不存在"
// @Router /api/v1/expenses [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Missing or invalid required field")
		return
	}

	expense, err := h.svc.Update(req.ID, service.ExpenseInput{
		CategoryID:    req.CategoryID,
		Amount:        *req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete 删除支出
// @Summary 删除支出
// @Description 删除指定支出记录
// @Tags 支出
// @Produce json
// @Param id query int true "支出ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 400 {object} ErrorResponse "缺少ID"
// @Failure 404 {object} ErrorResponse "支出不存在"
// @Router /api/v1/expenses [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Query("id"), 10, 32)

	if err := h.svc.Delete(uint(id)); err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
