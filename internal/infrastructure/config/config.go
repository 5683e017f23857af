package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖；
// 所有配置项都有默认值，没有配置文件也能直接运行（保持开箱即用）
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// DataConfig 数据文件配置
// 说明：三个集合各占一个制表符分隔的文本文件；订单不落盘（已知缺口，见DESIGN.md）
type DataConfig struct {
	Dir           string `mapstructure:"dir"`            // 数据文件目录
	ProductsFile  string `mapstructure:"products_file"`  // 商品文件名
	SuppliersFile string `mapstructure:"suppliers_file"` // 供应商文件名
	MembersFile   string `mapstructure:"members_file"`   // 会员文件名
}

// ProductsPath 商品文件完整路径
func (d DataConfig) ProductsPath() string {
	return filepath.Join(d.Dir, d.ProductsFile)
}

// SuppliersPath 供应商文件完整路径
func (d DataConfig) SuppliersPath() string {
	return filepath.Join(d.Dir, d.SuppliersFile)
}

// MembersPath 会员文件完整路径
func (d DataConfig) MembersPath() string {
	return filepath.Join(d.Dir, d.MembersFile)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Output string `mapstructure:"output"` // 诊断日志文件路径
}

type ReportConfig struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"` // 低库存报表的默认阈值
}

// Load 加载配置
// 支持：
// 1. 默认加载config/config.yaml（可缺省）
// 2. 可选的.env文件先填充进程环境
// 3. 环境变量覆盖（如INVENTORY_DATA_DIR → data.dir）
func Load() (*Config, error) {
	// .env缺失是正常情况，配置直接来自环境时不需要它
	_ = godotenv.Load()

	v := viper.New()

	// 设置配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 默认值：与原有数据文件布局保持一致（当前目录下三个txt + error.log）
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.products_file", "products.txt")
	v.SetDefault("data.suppliers_file", "suppliers.txt")
	v.SetDefault("data.members_file", "members.txt")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.output", "error.log")
	v.SetDefault("report.low_stock_threshold", 5)

	// 读取配置文件；文件不存在时使用默认值继续
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（自动转换，如INVENTORY_LOG_LEVEL → log.level）
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 解析到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 配置验证
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return fmt.Errorf("数据目录不能为空")
	}
	if cfg.Data.ProductsFile == "" || cfg.Data.SuppliersFile == "" || cfg.Data.MembersFile == "" {
		return fmt.Errorf("数据文件名不能为空")
	}
	if cfg.Log.Output == "" {
		return fmt.Errorf("日志输出路径不能为空")
	}
	return nil
}
