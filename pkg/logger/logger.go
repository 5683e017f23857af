package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建zap日志器
// 设计说明：
//  1. 日志只用于诊断（非法输入、跳过的损坏数据行），正常操作不写日志
//  2. 输出到error.log（追加写入），使用console编码保持纯文本格式，
//     方便直接用文本编辑器查看
//  3. zap对文件路径自动以O_APPEND|O_CREATE方式打开
func New(level, output string) (*zap.Logger, error) {
	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		lv = zapcore.WarnLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lv),
		Encoding:         "console",
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		EncoderConfig:    encoderConfig(),
	}

	return cfg.Build()
}

// Must 创建失败时panic的辅助函数
// 说明：只在程序启动阶段使用，启动失败没有降级的意义
func Must(l *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return l
}

// Named 返回带组件名的子日志器
func Named(base *zap.Logger, component string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(component)
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}
