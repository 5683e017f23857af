package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/xiebiao/inventory/internal/domain/member"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/supplier"
	"github.com/xiebiao/inventory/internal/domain/warehouse"
)

// 表格输出统一用text/tabwriter按列对齐

func renderProductTable(out io.Writer, products []product.Product) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t名称\t库存\t价格\t供应商ID")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\n",
			p.ID, p.Name, p.Stock, formatPrice(p.Price), p.SupplierID)
	}
	w.Flush()
}

func renderSupplierTable(out io.Writer, suppliers []supplier.Supplier) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t名称\t联系方式")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Contact)
	}
	w.Flush()
}

// renderMemberTable 会员列表（不展示密码）
func renderMemberTable(out io.Writer, members []member.Member) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t姓名\t角色")
	for _, m := range members {
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Name, m.Role)
	}
	w.Flush()
}

func renderMemberOrderCounts(out io.Writer, rows []warehouse.MemberOrderCount) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t姓名\t角色\t订单数")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
			row.Member.ID, row.Member.Name, row.Member.Role, row.Count)
	}
	w.Flush()
}

// formatPrice 展示用价格编码，与数据文件保持同一格式
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'g', -1, 64)
}
