package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 缺失承运商时的处理策略
const (
	MissingCarrierReject = "reject" // 返回“运费不可用”，下单失败
	MissingCarrierFree   = "free"   // 兼容旧行为，运费按 0 计算
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lmstfy   LmstfyConfig   `mapstructure:"lmstfy"`
	Shipping ShippingConfig `mapstructure:"shipping"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	Currency string `mapstructure:"currency"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LmstfyConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Namespace     string `mapstructure:"namespace"`
	Token         string `mapstructure:"token"`
	OrderQueue    string `mapstructure:"order_queue"`
	CallbackQueue string `mapstructure:"callback_queue"`
}

// ShippingConfig 运费计算配置
type ShippingConfig struct {
	MissingCarrierPolicy string        `mapstructure:"missing_carrier_policy"`
	RateCacheTTL         time.Duration `mapstructure:"rate_cache_ttl"`
}

// ConsumerConfig 回调消费者配置
type ConsumerConfig struct {
	Pullers        int           `mapstructure:"pullers"`         // 并发拉取数
	Processors     int           `mapstructure:"processors"`      // 并发处理数
	BufferSize     int           `mapstructure:"buffer_size"`     // Channel 缓冲大小
	Timeout        time.Duration `mapstructure:"timeout"`         // 拉取超时（长轮询）
	TTR            time.Duration `mapstructure:"ttr"`             // Time-To-Run
	ErrorBackoff   time.Duration `mapstructure:"error_backoff"`   // 拉取失败退避
	ProcessTimeout time.Duration `mapstructure:"process_timeout"` // 单条消息处理超时
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.currency", "XAF")
	v.SetDefault("server.port", "8080")
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)
	v.SetDefault("lmstfy.port", 7777)
	v.SetDefault("lmstfy.order_queue", "order_placed")
	v.SetDefault("lmstfy.callback_queue", "payment_callback")
	v.SetDefault("shipping.missing_carrier_policy", MissingCarrierReject)
	v.SetDefault("shipping.rate_cache_ttl", 5*time.Minute)
	v.SetDefault("consumer.pullers", 2)
	v.SetDefault("consumer.processors", 4)
	v.SetDefault("consumer.buffer_size", 64)
	v.SetDefault("consumer.timeout", 3*time.Second)
	v.SetDefault("consumer.ttr", 30*time.Second)
	v.SetDefault("consumer.error_backoff", time.Second)
	v.SetDefault("consumer.process_timeout", 10*time.Second)
	v.SetDefault("tracing.service_name", "storefront")
}

// Load 从配置文件加载配置，STOREFRONT_ 前缀的环境变量优先
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	cfg.Shipping.MissingCarrierPolicy = strings.ToLower(strings.TrimSpace(cfg.Shipping.MissingCarrierPolicy))

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy host is required")
	}
	if c.Lmstfy.Token == "" {
		return fmt.Errorf("lmstfy token is required")
	}
	switch c.Shipping.MissingCarrierPolicy {
	case MissingCarrierReject, MissingCarrierFree:
	default:
		return fmt.Errorf("shipping.missing_carrier_policy must be %q or %q, got %q",
			MissingCarrierReject, MissingCarrierFree, c.Shipping.MissingCarrierPolicy)
	}
	if c.Consumer.Pullers <= 0 || c.Consumer.Processors <= 0 {
		return fmt.Errorf("consumer pullers and processors must be positive")
	}
	return nil
}

// FreeWhenCarrierMissing 承运商缺失时是否按免运费处理
func (s ShippingConfig) FreeWhenCarrierMissing() bool {
	return s.MissingCarrierPolicy == MissingCarrierFree
}
