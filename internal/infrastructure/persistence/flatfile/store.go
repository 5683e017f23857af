package flatfile

import (
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/warehouse"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/pkg/logger"
)

// Store 文件存储聚合
// 设计说明:
//  1. 三个集合各一个文件存储，启动时整体加载、退出时整体写出
//     （"退出时全量落盘"是这套存储唯一的持久性保证）
//  2. 加载走仓库的插入或覆盖路径，文件中后出现的同ID记录覆盖先出现的
//  3. 订单不持久化——已知缺口：订单数量统计每次运行都会清零。
//     为与既有数据文件布局保持兼容暂不扩展，见DESIGN.md
type Store struct {
	products  *ProductFile
	suppliers *SupplierFile
	members   *MemberFile
}

// NewStore 创建文件存储聚合
func NewStore(cfg *config.Config, log *zap.Logger) *Store {
	log = logger.Named(log, "flatfile")
	return &Store{
		products:  NewProductFile(cfg.Data.ProductsPath(), log),
		suppliers: NewSupplierFile(cfg.Data.SuppliersPath(), log),
		members:   NewMemberFile(cfg.Data.MembersPath(), log),
	}
}

// LoadAll 加载三个集合到仓库（启动时调用）
func (s *Store) LoadAll(w *warehouse.Warehouse) error {
	products, err := s.products.Load()
	if err != nil {
		return err
	}
	for _, p := range products {
		w.AddProduct(p)
	}

	suppliers, err := s.suppliers.Load()
	if err != nil {
		return err
	}
	for _, sp := range suppliers {
		w.AddSupplier(sp)
	}

	members, err := s.members.Load()
	if err != nil {
		return err
	}
	for _, m := range members {
		w.AddMember(m)
	}

	return nil
}

// SaveAll 写出三个集合（退出时调用；订单不写出）
func (s *Store) SaveAll(w *warehouse.Warehouse) error {
	if err := s.products.Save(w.AllProducts()); err != nil {
		return err
	}
	if err := s.suppliers.Save(w.AllSuppliers()); err != nil {
		return err
	}
	return s.members.Save(w.AllMembers())
}
