package warehouse

import (
	"sort"
	"sync"

	"github.com/xiebiao/inventory/internal/domain/member"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/supplier"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// Warehouse 仓库聚合
// 设计说明:
//  1. 聚合一个库存集合、两个键控集合（供应商、会员）和一个追加式订单列表
//  2. 供应商/会员与库存一样采用"插入或覆盖"语义，数据文件加载复用同一路径
//     （文件中后出现的同ID记录覆盖先出现的）
//  3. 所有操作共用一把互斥锁。CLI本身是单线程的，但ProcessOrder的
//     校验+提交必须处于同一临界区：两个并发订单若分别通过校验再先后提交，
//     同一份库存会被扣减两次（超卖）
type Warehouse struct {
	mu        sync.Mutex
	inventory *product.Inventory
	suppliers map[int]*supplier.Supplier
	members   map[int]*member.Member
	orders    []*order.Order
}

// New 创建空仓库
func New() *Warehouse {
	return &Warehouse{
		inventory: product.NewInventory(),
		suppliers: make(map[int]*supplier.Supplier),
		members:   make(map[int]*member.Member),
	}
}

// =========================================
// 录入（插入或覆盖）
// =========================================

// AddProduct 添加商品
func (w *Warehouse) AddProduct(p *product.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.inventory.AddProduct(p)
}

// AddSupplier 添加供应商
func (w *Warehouse) AddSupplier(s *supplier.Supplier) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppliers[s.ID] = s
}

// AddMember 添加会员
func (w *Warehouse) AddMember(m *member.Member) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.members[m.ID] = m
}

// =========================================
// 订单处理（核心算法）
// =========================================

// ProcessOrder 处理订单
// 核心规则：两遍扫描、整单生效或整单丢弃
//
// 第一遍（校验）：逐项检查商品是否存在、库存是否充足，任何一项
// 不满足立即返回错误——订单不进订单列表，库存不发生任何变化，
// 其余已通过校验的订单项同样作废（不允许部分成交）。
//
// 第二遍（提交）：只有全部订单项通过校验才会执行，逐项扣减库存后
// 将订单整体追加到订单列表。提交阶段信任校验结果，不再复查库存，
// 因此两遍必须在同一临界区内完成（见结构体注释）。
//
// 这组规则保证：订单不会部分成交，单次ProcessOrder不会把库存扣成负数。
func (w *Warehouse) ProcessOrder(o *order.Order) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// 第一遍：校验
	for _, item := range o.Items {
		p, err := w.inventory.GetProduct(item.ProductID)
		if err != nil {
			return apperrors.Newf(apperrors.ErrCodeProductNotFound,
				"商品ID %d 不存在，订单未处理", item.ProductID)
		}
		if p.Stock < item.Quantity {
			return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
				"商品《%s》(ID: %d)库存不足，当前库存：%d，需要：%d，订单未处理",
				p.Name, p.ID, p.Stock, item.Quantity)
		}
	}

	// 第二遍：提交
	for _, item := range o.Items {
		w.inventory.UpdateStock(item.ProductID, -item.Quantity)
	}
	w.orders = append(w.orders, o)
	return nil
}

// CountOrdersByMember 统计指定会员的订单数量
// 说明：对订单列表做线性扫描，订单量是小规模数据，无需索引
func (w *Warehouse) CountOrdersByMember(memberID int) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	count := 0
	for _, o := range w.orders {
		if o.MemberID == memberID {
			count++
		}
	}
	return count
}

// OrderCount 订单总数
func (w *Warehouse) OrderCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.orders)
}

// =========================================
// 查询（均返回值拷贝）
// =========================================

// ProductByID 根据ID查询商品
func (w *Warehouse) ProductByID(id int) (product.Product, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inventory.GetProduct(id)
}

// SupplierByID 根据ID查询供应商
func (w *Warehouse) SupplierByID(id int) (supplier.Supplier, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.suppliers[id]
	if !ok {
		return supplier.Supplier{}, supplier.ErrSupplierNotFound
	}
	return *s, nil
}

// MemberByID 根据ID查询会员
func (w *Warehouse) MemberByID(id int) (member.Member, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	m, ok := w.members[id]
	if !ok {
		return member.Member{}, member.ErrMemberNotFound
	}
	return *m, nil
}

// LowStockProducts 查询低库存商品（严格小于阈值）
func (w *Warehouse) LowStockProducts(threshold int) []product.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inventory.LowStockProducts(threshold)
}

// AllProducts 全部商品快照（按ID升序）
func (w *Warehouse) AllProducts() []product.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inventory.AllProducts()
}

// AllSuppliers 全部供应商快照（按ID升序）
func (w *Warehouse) AllSuppliers() []supplier.Supplier {
	w.mu.Lock()
	defer w.mu.Unlock()

	all := make([]supplier.Supplier, 0, len(w.suppliers))
	for _, s := range w.suppliers {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// AllMembers 全部会员快照（按ID升序）
func (w *Warehouse) AllMembers() []member.Member {
	w.mu.Lock()
	defer w.mu.Unlock()

	all := make([]member.Member, 0, len(w.members))
	for _, m := range w.members {
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// =========================================
// 编辑（键+修改闭包）
// =========================================
// 设计说明：不向调用方返回可变引用，编辑统一通过键定位+闭包修改，
// 底层容器调整时不会出现悬挂引用

// EditProduct 编辑商品
func (w *Warehouse) EditProduct(id int, fn func(*product.Product)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inventory.EditProduct(id, fn)
}

// EditSupplier 编辑供应商
func (w *Warehouse) EditSupplier(id int, fn func(*supplier.Supplier)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.suppliers[id]
	if !ok {
		return supplier.ErrSupplierNotFound
	}
	fn(s)
	return nil
}

// EditMember 编辑会员
func (w *Warehouse) EditMember(id int, fn func(*member.Member)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	m, ok := w.members[id]
	if !ok {
		return member.ErrMemberNotFound
	}
	fn(m)
	return nil
}
