//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销、类型安全
// 2. 当前main.go仍是手动组装，本文件先把Provider分组定义好，
//    切换时运行 `wire gen ./cmd/cli` 生成wire_gen.go即可

package main

import (
	"io"
	"os"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/warehouse"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/flatfile"
	"github.com/xiebiao/inventory/internal/interface/cli"
	"github.com/xiebiao/inventory/pkg/logger"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、诊断日志、文件存储
var infrastructureSet = wire.NewSet(
	config.Load,       // 加载配置文件
	provideLogger,     // 创建zap日志器
	flatfile.NewStore, // 创建文件存储聚合
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	warehouse.New, // 仓库聚合
)

// cliSet 控制台层依赖
var cliSet = wire.NewSet(
	provideStdin,  // 标准输入
	provideStdout, // 标准输出
	cli.NewApp,    // 控制台应用
)

// provideLogger 从配置创建日志器
// 说明：logger.New的参数是level和output两个字符串，
// Wire无法自动从Config提取，需要手动编写Provider
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Output)
}

func provideStdin() io.Reader  { return os.Stdin }
func provideStdout() io.Writer { return os.Stdout }

// InitializeApp 初始化整个应用
func InitializeApp() (*cli.App, error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		cliSet,
	)
	return nil, nil
}
