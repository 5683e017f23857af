package main

import (
	"log"
	"os"

	"github.com/xiebiao/inventory/internal/domain/warehouse"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/flatfile"
	"github.com/xiebiao/inventory/internal/interface/cli"
	"github.com/xiebiao/inventory/pkg/logger"
)

// main 主程序入口
// 说明：手动依赖注入（provider定义见wire.go，后续切换到Wire自动生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化诊断日志（error.log）
	zl, err := logger.New(cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zl.Sync()

	// 3. 依赖注入（手动组装）
	// 依赖链：Store ← Warehouse ← App
	wh := warehouse.New()
	store := flatfile.NewStore(cfg, zl)
	app := cli.NewApp(cfg, wh, store, os.Stdin, os.Stdout, zl)

	// 4. 运行主循环（内部完成数据加载与退出落盘）
	if err := app.Run(); err != nil {
		log.Fatalf("运行失败: %v", err)
	}
}
