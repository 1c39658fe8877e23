package database

import (
	"database/sql"
	"fmt"
	"log"

	"finman/config"
	"finman/models"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
// 数据库不存在时自动创建，随后迁移表结构并写入默认类别
func Init(cfg *config.Config) error {
	if err := ensureDatabase(cfg); err != nil {
		return fmt.Errorf("创建数据库失败: %w", err)
	}

	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	logLevel := logger.Info
	if cfg.Server.Mode == "release" {
		logLevel = logger.Warn
	}

	var err error
	// TranslateError 让唯一索引、外键冲突以 gorm.ErrDuplicatedKey /
	// gorm.ErrForeignKeyViolated 的形式暴露，service 层据此分类错误
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Category{},
		&models.Budget{},
		&models.Expense{},
	); err != nil {
		return err
	}

	// 初始化默认类别（仅当表为空时）
	// 空表时第一条插入，因此默认类别总是拿到 id=1
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		if err := DB.Create(&models.Category{
			Name:        models.ProtectedCategoryName,
			IsProtected: true,
		}).Error; err != nil {
			return fmt.Errorf("初始化默认类别失败: %w", err)
		}
		log.Printf("已创建默认类别 %q", models.ProtectedCategoryName)
	}

	log.Println("数据库初始化成功")
	return nil
}

// ensureDatabase 连接 MySQL 服务器（不指定库），数据库不存在时创建
func ensureDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	_, err = sqlDB.Exec(fmt.Sprintf(
		"CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET %s",
		cfg.Database.DBName,
		cfg.Database.Charset,
	))
	return err
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
