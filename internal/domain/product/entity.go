package product

// Product 商品实体（聚合根）
// 设计说明:
// 1. ID由操作员录入（非自增），是库存集合的唯一键
// 2. Price使用float64，对应数据文件中的十进制价格字段
// 3. SupplierID是参考性外键，不校验对应供应商是否存在
type Product struct {
	ID         int
	Name       string
	Stock      int
	Price      float64
	SupplierID int
}

// NewProduct 创建新商品（工厂方法）
func NewProduct(id int, name string, stock int, price float64, supplierID int) *Product {
	return &Product{
		ID:         id,
		Name:       name,
		Stock:      stock,
		Price:      price,
		SupplierID: supplierID,
	}
}

// UpdateStock 按增量调整库存（领域行为）
// 说明：delta可为负数。此处不做下限约束，"不超卖"的保证
// 由仓库的订单处理流程负责
func (p *Product) UpdateStock(delta int) {
	p.Stock += delta
}
