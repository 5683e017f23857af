package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// maxIDDigits 录入ID的最大位数
const maxIDDigits = 8

// Prompter 行式输入助手
// 设计说明:
// 1. 输入校验失败时提示并重新询问，永不中断程序（输入格式错误不是致命错误）
// 2. 每次被拒绝的输入都记入诊断日志，方便事后排查操作员遇到的问题
// 3. 读取失败（如输入流关闭）通过error上抛，由主循环决定收尾
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

// NewPrompter 创建输入助手
func NewPrompter(in io.Reader, out io.Writer, log *zap.Logger) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// ReadLine 读取一行原始输入（去掉行尾换行符）
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt 读取整数，格式非法时重新询问
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "输入无效，请输入一个数字。")
		p.log.Warn("非法整数输入", zap.String("input", line))
	}
}

// ReadFloat 读取十进制数（价格），格式非法时重新询问
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt + "（如12.99）: ")
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "输入无效，请输入合法的价格。")
		p.log.Warn("非法价格输入", zap.String("input", line))
	}
}

// ReadID 读取ID（仅数字，最多8位），格式非法时重新询问
func (p *Prompter) ReadID(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt + "（仅数字，最多8位）: ")
		if err != nil {
			return 0, err
		}
		input := strings.TrimSpace(line)
		if len(input) > maxIDDigits {
			fmt.Fprintln(p.out, "ID不能超过8位。")
			p.log.Warn("ID超长", zap.String("input", input))
			continue
		}
		if input == "" || !isAllDigits(input) {
			fmt.Fprintln(p.out, "ID只能包含数字。")
			p.log.Warn("ID含非数字字符", zap.String("input", input))
			continue
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入合法的数字。")
			p.log.Warn("非法ID输入", zap.String("input", input))
			continue
		}
		return value, nil
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
