package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInventory_AddProduct_Overwrite 测试同ID重复添加的覆盖语义
func TestInventory_AddProduct_Overwrite(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(1, "苹果", 10, 2.5, 100))
	inv.AddProduct(NewProduct(1, "香蕉", 3, 1.8, 200))

	p, err := inv.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, "香蕉", p.Name)
	require.Equal(t, 3, p.Stock)
	require.Equal(t, 1.8, p.Price)
	require.Equal(t, 200, p.SupplierID)
	require.Equal(t, 1, inv.Len())
}

// TestInventory_UpdateStock 测试增量调整库存
func TestInventory_UpdateStock(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(1, "苹果", 10, 2.5, 100))

	inv.UpdateStock(1, -4)
	p, err := inv.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, 6, p.Stock)

	// 商品不存在时静默忽略，不报错也不影响已有数据
	inv.UpdateStock(99, -1)
	p, err = inv.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, 6, p.Stock)
}

// TestInventory_GetProduct_ReturnsCopy 测试查询返回值拷贝（不暴露内部引用）
func TestInventory_GetProduct_ReturnsCopy(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(1, "苹果", 10, 2.5, 100))

	p, err := inv.GetProduct(1)
	require.NoError(t, err)
	p.Stock = 0
	p.Name = "改掉了"

	stored, err := inv.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, "苹果", stored.Name)
	require.Equal(t, 10, stored.Stock)
}

// TestInventory_GetProduct_NotFound 测试查询不存在的商品
func TestInventory_GetProduct_NotFound(t *testing.T) {
	inv := NewInventory()
	_, err := inv.GetProduct(42)
	require.ErrorIs(t, err, ErrProductNotFound)
}

// TestInventory_EditProduct 测试键+闭包的编辑路径
func TestInventory_EditProduct(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(1, "苹果", 10, 2.5, 100))

	err := inv.EditProduct(1, func(p *Product) {
		p.Name = "红苹果"
		p.Price = 3.2
	})
	require.NoError(t, err)

	p, err := inv.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, "红苹果", p.Name)
	require.Equal(t, 3.2, p.Price)

	err = inv.EditProduct(99, func(p *Product) { p.Stock = 1 })
	require.ErrorIs(t, err, ErrProductNotFound)
}

// TestInventory_LowStockProducts 测试低库存筛选的边界（严格小于）
func TestInventory_LowStockProducts(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(1, "A", 4, 1, 0))
	inv.AddProduct(NewProduct(2, "B", 5, 1, 0))
	inv.AddProduct(NewProduct(3, "C", 6, 1, 0))
	inv.AddProduct(NewProduct(4, "D", 0, 1, 0))

	low := inv.LowStockProducts(5)
	require.Len(t, low, 2)
	// stock == threshold 不算低库存
	require.Equal(t, 1, low[0].ID)
	require.Equal(t, 4, low[1].ID)
}

// TestInventory_AllProducts_SortedByID 测试快照按ID升序
func TestInventory_AllProducts_SortedByID(t *testing.T) {
	inv := NewInventory()
	inv.AddProduct(NewProduct(3, "C", 1, 1, 0))
	inv.AddProduct(NewProduct(1, "A", 1, 1, 0))
	inv.AddProduct(NewProduct(2, "B", 1, 1, 0))

	all := inv.AllProducts()
	require.Len(t, all, 3)
	require.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}
