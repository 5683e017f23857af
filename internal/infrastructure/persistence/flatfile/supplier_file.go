package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/supplier"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// SupplierFile 供应商文件存储
// 格式：id、name、contact，制表符分隔，一行一条
type SupplierFile struct {
	path string
	log  *zap.Logger
}

// NewSupplierFile 创建供应商文件存储
func NewSupplierFile(path string, log *zap.Logger) *SupplierFile {
	return &SupplierFile{path: path, log: log}
}

// Save 整体写出供应商集合（覆盖写）
func (f *SupplierFile) Save(suppliers []supplier.Supplier) error {
	file, err := os.Create(f.path)
	if err != nil {
		return apperrors.Wrap(err, "写入供应商文件失败")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Contact)
	}
	if err := w.Flush(); err != nil {
		return apperrors.Wrap(err, "写入供应商文件失败")
	}
	return nil
}

// Load 逐行读入供应商集合（文件不存在视为空集合）
func (f *SupplierFile) Load() ([]*supplier.Supplier, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取供应商文件失败")
	}
	defer file.Close()

	var suppliers []*supplier.Supplier
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			f.log.Warn("跳过无法解析的供应商记录", zap.String("line", line))
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			f.log.Warn("跳过无法解析的供应商记录", zap.String("line", line))
			continue
		}
		suppliers = append(suppliers, supplier.NewSupplier(id, fields[1], fields[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "读取供应商文件失败")
	}
	return suppliers, nil
}
