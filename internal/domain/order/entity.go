package order

import (
	"time"
)

// Order 订单实体（聚合根）
// 设计说明:
// 1. Order是聚合根，OrderItem是聚合内的子实体
// 2. ID由操作员录入，系统不强制唯一
// 3. Date在构造时设置一次，此后不变；订单不落盘，Date也随之不持久化
type Order struct {
	ID       int
	MemberID int
	Items    []OrderItem
	Date     time.Time
}

// OrderItem 订单明细项
// 说明：只保存ProductID（不直接引用商品对象，避免跨聚合引用）；
// 构造时不校验商品是否存在，校验统一放在仓库的订单处理流程
type OrderItem struct {
	ProductID int
	Quantity  int
}

// NewOrder 创建新订单（工厂方法）
// 初始无明细，通过AddItem逐项追加，追加顺序即处理顺序
func NewOrder(id, memberID int) *Order {
	return &Order{
		ID:       id,
		MemberID: memberID,
		Date:     time.Now(),
	}
}

// AddItem 追加订单明细（仅追加，不支持删除）
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
}
