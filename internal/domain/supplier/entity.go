package supplier

// Supplier 供应商实体
// 说明：Contact为自由文本（电话、邮箱均可），
// 与商品的SupplierID之间不做引用完整性约束
type Supplier struct {
	ID      int
	Name    string
	Contact string
}

// NewSupplier 创建新供应商（工厂方法）
func NewSupplier(id int, name, contact string) *Supplier {
	return &Supplier{
		ID:      id,
		Name:    name,
		Contact: contact,
	}
}
