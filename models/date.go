package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout 日期格式，所有对外输出统一为 YYYY-MM-DD
const DateLayout = "2006-01-02"

// Date 仅含日期部分的时间类型，对应 MySQL 的 DATE 列
// JSON 序列化固定为 "YYYY-MM-DD"，反序列化严格校验（2024-13-01 之类直接报错）
type Date struct {
	time.Time
}

// ParseDate 解析 YYYY-MM-DD 字符串
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String 返回 YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON 实现 json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 实现 driver.Valuer，写库时只保留日期部分
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan 实现 sql.Scanner，兼容 parseTime 开关两种驱动行为
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v}
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("无法将 %T 转换为 Date", value)
	}
}
