package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/member"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// MemberFile 会员文件存储
// 格式：id、name、role、password，制表符分隔，一行一条
// 注意：密码按明文存储——既有数据文件格式的兼容性要求（见DESIGN.md）
type MemberFile struct {
	path string
	log  *zap.Logger
}

// NewMemberFile 创建会员文件存储
func NewMemberFile(path string, log *zap.Logger) *MemberFile {
	return &MemberFile{path: path, log: log}
}

// Save 整体写出会员集合（覆盖写）
func (f *MemberFile) Save(members []member.Member) error {
	file, err := os.Create(f.path)
	if err != nil {
		return apperrors.Wrap(err, "写入会员文件失败")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, m := range members {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Name, m.Role, m.Password)
	}
	if err := w.Flush(); err != nil {
		return apperrors.Wrap(err, "写入会员文件失败")
	}
	return nil
}

// Load 逐行读入会员集合（文件不存在视为空集合）
func (f *MemberFile) Load() ([]*member.Member, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取会员文件失败")
	}
	defer file.Close()

	var members []*member.Member
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			f.log.Warn("跳过无法解析的会员记录", zap.String("line", line))
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			f.log.Warn("跳过无法解析的会员记录", zap.String("line", line))
			continue
		}
		members = append(members, member.NewMember(id, fields[1], fields[2], fields[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "读取会员文件失败")
	}
	return members, nil
}
