package api

import (
	"net/http"

	"finman/database"
	"finman/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 月度统计接口
type SummaryHandler struct {
	svc *service.SummaryService
}

// NewSummaryHandler 创建统计接口处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{svc: service.NewSummaryService(database.DB)}
}

// Month 获取月度汇总
// @Summary 获取月度汇总
// @Description 按类别统计指定月份的预算与实际支出，无预算/无支出计 0
// @Tags 统计
// @Produce json
// @Param month query string false "月份 (YYYY-MM)，默认当前月"
// @Success 200 {object} service.MonthSummary "汇总数据"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "存储失败"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Month(c *gin.Context) {
	summary, err := h.svc.Month(c.Query("month"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
