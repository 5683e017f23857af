package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/product"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// ProductFile 商品文件存储
// 设计说明:
//  1. 一行一条记录，字段按固定顺序以制表符分隔：id、name、stock、price、supplierId
//  2. 文本字段不做转义——名称中含制表符/换行符的记录无法完整往返，
//     这是既有数据格式的已知限制
//  3. 解析失败的行（字段数不对、数值字段非法）跳过并记入诊断日志，不中断加载
type ProductFile struct {
	path string
	log  *zap.Logger
}

// NewProductFile 创建商品文件存储
func NewProductFile(path string, log *zap.Logger) *ProductFile {
	return &ProductFile{path: path, log: log}
}

// Save 整体写出商品集合（覆盖写）
func (f *ProductFile) Save(products []product.Product) error {
	file, err := os.Create(f.path)
	if err != nil {
		return apperrors.Wrap(err, "写入商品文件失败")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\n",
			p.ID, p.Name, p.Stock, formatPrice(p.Price), p.SupplierID)
	}
	if err := w.Flush(); err != nil {
		return apperrors.Wrap(err, "写入商品文件失败")
	}
	return nil
}

// Load 逐行读入商品集合
// 说明：文件不存在视为空集合，不是错误（首次运行的正常状态）
func (f *ProductFile) Load() ([]*product.Product, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取商品文件失败")
	}
	defer file.Close()

	var products []*product.Product
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		p, ok := f.parseLine(line)
		if !ok {
			f.log.Warn("跳过无法解析的商品记录", zap.String("line", line))
			continue
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "读取商品文件失败")
	}
	return products, nil
}

// parseLine 解析单行记录，格式不符返回ok=false
func (f *ProductFile) parseLine(line string) (*product.Product, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		return nil, false
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, false
	}
	stock, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, false
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, false
	}
	supplierID, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, false
	}

	return product.NewProduct(id, fields[1], stock, price, supplierID), true
}

// formatPrice 价格编码
// 说明：'g'格式保留能完整还原float64的最短表示，保证往返一致
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'g', -1, 64)
}
