package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, "finance_manager", cfg.Database.DBName)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_ExternalFileOverride(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \":9000\"\n  mode: \"release\"\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	// 未覆盖的字段保留内置默认值
	assert.Equal(t, "finance_manager", cfg.Database.DBName)
}

func TestLoadConfig_MissingExternalFile(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	// 指定的外部文件不存在时退回内置默认值，不报错
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	t.Setenv("FINMAN_DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestSafeErrorMessage(t *testing.T) {
	old := GlobalConfig
	defer func() { GlobalConfig = old }()

	boom := errors.New("dial tcp 127.0.0.1:3306: connect refused")

	// 无错误时返回兜底文案
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "fallback", SafeErrorMessage(nil, "fallback"))

	// debug 模式透出错误详情
	assert.Equal(t, boom.Error(), SafeErrorMessage(boom, "fallback"))

	// release 模式只返回兜底文案
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	assert.Equal(t, "fallback", SafeErrorMessage(boom, "fallback"))

	// 配置未初始化时按 debug 处理
	GlobalConfig = nil
	assert.Equal(t, boom.Error(), SafeErrorMessage(boom, "fallback"))
}
