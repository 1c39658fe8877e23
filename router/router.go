package router

import (
	"io/fs"
	"net/http"
	"time"

	"finman/api"
	"finman/config"
	_ "finman/docs"
	"finman/middleware"
	"finman/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 按实体单一路径、方法分发；未注册的方法统一返回 405
	r.HandleMethodNotAllowed = true
	r.NoMethod(api.MethodNotAllowed)

	// 嵌入的静态文件 - 单页客户端
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
	assetFS, _ := fs.Sub(web.StaticFS, "static")
	r.StaticFS("/static", http.FS(assetFS))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(300, time.Minute))
	{
		categoryHandler := api.NewCategoryHandler()
		v1.GET("/categories", categoryHandler.List)
		v1.POST("/categories", categoryHandler.Create)
		v1.PUT("/categories", categoryHandler.Update)
		v1.DELETE("/categories", categoryHandler.Delete)

		budgetHandler := api.NewBudgetHandler()
		v1.GET("/budgets", budgetHandler.List)
		v1.POST("/budgets", budgetHandler.Create)
		v1.PUT("/budgets", budgetHandler.Update)
		v1.DELETE("/budgets", budgetHandler.Delete)

		expenseHandler := api.NewExpenseHandler()
		v1.GET("/expenses", expenseHandler.List)
		v1.POST("/expenses", expenseHandler.Create)
		v1.PUT("/expenses", expenseHandler.Update)
		v1.DELETE("/expenses", expenseHandler.Delete)

		summaryHandler := api.NewSummaryHandler()
		v1.GET("/summary", summaryHandler.Month)

		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
