package product

import (
	"sort"
)

// Inventory 库存集合
// 设计说明:
//  1. 以商品ID为键的关联容器，重复添加同ID商品时覆盖旧记录
//  2. 查询返回值拷贝，修改通过EditProduct以"键+闭包"完成，
//     不向外暴露内部指针，避免调用方长期持有内部引用
type Inventory struct {
	products map[int]*Product
}

// NewInventory 创建空库存集合
func NewInventory() *Inventory {
	return &Inventory{
		products: make(map[int]*Product),
	}
}

// AddProduct 添加商品（插入或覆盖）
func (inv *Inventory) AddProduct(p *Product) {
	inv.products[p.ID] = p
}

// UpdateStock 按增量调整指定商品的库存
// 说明：商品不存在时静默忽略，不视为错误
func (inv *Inventory) UpdateStock(productID, delta int) {
	if p, ok := inv.products[productID]; ok {
		p.UpdateStock(delta)
	}
}

// GetProduct 根据ID查询商品（返回值拷贝）
func (inv *Inventory) GetProduct(productID int) (Product, error) {
	p, ok := inv.products[productID]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return *p, nil
}

// EditProduct 通过键定位商品并应用修改闭包
// 说明：所有字段修改都走这条路径（编辑功能的支撑方法）
func (inv *Inventory) EditProduct(productID int, fn func(*Product)) error {
	p, ok := inv.products[productID]
	if !ok {
		return ErrProductNotFound
	}
	fn(p)
	return nil
}

// LowStockProducts 查询库存低于阈值的商品
// 业务规则：严格小于（stock == threshold不算低库存）
func (inv *Inventory) LowStockProducts(threshold int) []Product {
	var low []Product
	for _, p := range inv.products {
		if p.Stock < threshold {
			low = append(low, *p)
		}
	}
	sortByID(low)
	return low
}

// AllProducts 返回全部商品的快照（按ID升序）
func (inv *Inventory) AllProducts() []Product {
	all := make([]Product, 0, len(inv.products))
	for _, p := range inv.products {
		all = append(all, *p)
	}
	sortByID(all)
	return all
}

// Len 商品数量
func (inv *Inventory) Len() int {
	return len(inv.products)
}

func sortByID(products []Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
}
