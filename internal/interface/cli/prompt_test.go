package cli

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out, zap.NewNop()), out
}

// TestPrompter_ReadInt_Retry 测试非数字输入被拒绝并重新询问
func TestPrompter_ReadInt_Retry(t *testing.T) {
	p, out := newTestPrompter("abc\n\n12\n")

	v, err := p.ReadInt("库存: ")
	if err != nil {
		t.Fatalf("期望成功，实际失败: %v", err)
	}
	if v != 12 {
		t.Errorf("期望12，实际%d", v)
	}
	if !strings.Contains(out.String(), "输入无效") {
		t.Error("被拒绝的输入应有提示")
	}
}

// TestPrompter_ReadFloat_Retry 测试非法价格输入被拒绝并重新询问
func TestPrompter_ReadFloat_Retry(t *testing.T) {
	p, _ := newTestPrompter("12,99\n12.99\n")

	v, err := p.ReadFloat("价格")
	if err != nil {
		t.Fatalf("期望成功，实际失败: %v", err)
	}
	if v != 12.99 {
		t.Errorf("期望12.99，实际%v", v)
	}
}

// TestPrompter_ReadID 测试ID录入的各类非法输入：超长、含字母、空
func TestPrompter_ReadID(t *testing.T) {
	p, out := newTestPrompter("123456789\nab12\n\n42\n")

	v, err := p.ReadID("商品ID")
	if err != nil {
		t.Fatalf("期望成功，实际失败: %v", err)
	}
	if v != 42 {
		t.Errorf("期望42，实际%d", v)
	}
	got := out.String()
	if !strings.Contains(got, "不能超过8位") {
		t.Error("超长ID应有提示")
	}
	if !strings.Contains(got, "只能包含数字") {
		t.Error("非数字ID应有提示")
	}
}

// TestPrompter_ReadLine_EOF 测试输入流关闭时上抛错误
func TestPrompter_ReadLine_EOF(t *testing.T) {
	p, _ := newTestPrompter("")
	if _, err := p.ReadLine("名称: "); err == nil {
		t.Error("输入流关闭时应返回错误")
	}
}

// TestPrompter_ReadLine_NoTrailingNewline 测试末行无换行符时仍能读到内容
func TestPrompter_ReadLine_NoTrailingNewline(t *testing.T) {
	p, _ := newTestPrompter("最后一行")
	line, err := p.ReadLine("名称: ")
	if err != nil {
		t.Fatalf("期望成功，实际失败: %v", err)
	}
	if line != "最后一行" {
		t.Errorf("期望\"最后一行\"，实际%q", line)
	}
}
