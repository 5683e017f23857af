package warehouse

import (
	"sort"

	"github.com/xiebiao/inventory/internal/domain/member"
)

// MemberOrderCount 会员订单数报表行
type MemberOrderCount struct {
	Member member.Member
	Count  int
}

// MemberOrderCounts 统计每个会员的订单数（按会员ID升序）
// 说明：按会员逐个扫描订单列表，O(会员数×订单数)，小规模数据下足够
func (w *Warehouse) MemberOrderCounts() []MemberOrderCount {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows := make([]MemberOrderCount, 0, len(w.members))
	for _, m := range w.members {
		count := 0
		for _, o := range w.orders {
			if o.MemberID == m.ID {
				count++
			}
		}
		rows = append(rows, MemberOrderCount{Member: *m, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Member.ID < rows[j].Member.ID })
	return rows
}
