package etzone

import (
	"errors"
	"strings"
	"time"
)

// 错误定义
var (
	ErrInvalidZoneName    = errors.New("zone name cannot be empty")
	ErrEmptyCountries     = errors.New("zone must contain at least one country")
	ErrInvalidCountryCode = errors.New("country code must be ISO 3166-1 alpha-2")
	ErrZoneNotFound       = errors.New("no shipping zone covers destination")
)

// Zone 配送区域（按国家分组）
type Zone struct {
	ID        int64
	Name      string
	Countries []string // ISO 3166-1 alpha-2，大写
	Active    bool
	CreatedAt time.Time
}

// NewZone 创建区域（工厂方法）
func NewZone(id int64, name string, countries []string, active bool) (*Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidZoneName
	}
	if len(countries) == 0 {
		return nil, ErrEmptyCountries
	}

	normalized := make([]string, 0, len(countries))
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		code, err := NormalizeCountry(c)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		normalized = append(normalized, code)
	}

	return &Zone{
		ID:        id,
		Name:      name,
		Countries: normalized,
		Active:    active,
		CreatedAt: time.Now(),
	}, nil
}

// NormalizeCountry 统一国家代码格式
func NormalizeCountry(country string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", ErrInvalidCountryCode
	}
	return code, nil
}

// Covers 区域是否包含该国家
func (z *Zone) Covers(country string) bool {
	code, err := NormalizeCountry(country)
	if err != nil {
		return false
	}
	for _, c := range z.Countries {
		if c == code {
			return true
		}
	}
	return false
}
