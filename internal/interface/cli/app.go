package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/member"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/supplier"
	"github.com/xiebiao/inventory/internal/domain/warehouse"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/flatfile"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/logger"
)

// App 控制台应用
// 设计说明:
// 1. App只做菜单分发、输入收集和结果展示，业务规则全部在warehouse里
// 2. 输入输出通过io.Reader/io.Writer注入，测试时用缓冲区替代标准输入输出
// 3. 启动时加载数据文件，退出时全量写出（订单除外）
type App struct {
	cfg    *config.Config
	wh     *warehouse.Warehouse
	store  *flatfile.Store
	prompt *Prompter
	out    io.Writer
	log    *zap.Logger
}

// NewApp 创建控制台应用
func NewApp(cfg *config.Config, wh *warehouse.Warehouse, store *flatfile.Store, in io.Reader, out io.Writer, log *zap.Logger) *App {
	log = logger.Named(log, "cli")
	return &App{
		cfg:    cfg,
		wh:     wh,
		store:  store,
		prompt: NewPrompter(in, out, log),
		out:    out,
		log:    log,
	}
}

// Run 主循环：加载数据 → 菜单分发 → 退出时落盘
func (a *App) Run() error {
	if err := a.store.LoadAll(a.wh); err != nil {
		return err
	}

	for {
		a.clearScreen()
		a.showMainMenu()

		choice, err := a.prompt.ReadInt("请选择: ")
		if err != nil {
			// 输入流关闭时与正常退出同样处理，保证数据落盘
			return a.shutdown()
		}

		done, err := a.dispatch(choice)
		if done {
			return a.shutdown()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return a.shutdown()
			}
			return err
		}
	}
}

// dispatch 菜单分发，返回done=true表示用户选择退出
func (a *App) dispatch(choice int) (bool, error) {
	switch choice {
	case 1:
		return false, a.addProduct()
	case 2:
		return false, a.addSupplier()
	case 3:
		return false, a.addMember()
	case 4:
		return false, a.processOrder()
	case 5:
		return false, a.showAllStock()
	case 6:
		return false, a.editProduct()
	case 7:
		return false, a.editSupplier()
	case 8:
		return false, a.editMember()
	case 9:
		return false, a.showSupplierList()
	case 10:
		return false, a.showMemberList()
	case 11:
		return false, a.showMemberOrderCounts()
	case 12:
		return true, nil
	default:
		fmt.Fprintln(a.out, "无效的选项！")
		return false, a.pause()
	}
}

// shutdown 写出数据文件并结束
func (a *App) shutdown() error {
	if err := a.store.SaveAll(a.wh); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "再见！")
	return nil
}

func (a *App) showMainMenu() {
	fmt.Fprintln(a.out, "=============================")
	fmt.Fprintln(a.out, "   SmartInventoryPro 系统")
	fmt.Fprintln(a.out, "=============================")
	fmt.Fprintln(a.out, "1. 添加商品")
	fmt.Fprintln(a.out, "2. 添加供应商")
	fmt.Fprintln(a.out, "3. 添加会员")
	fmt.Fprintln(a.out, "4. 处理订单")
	fmt.Fprintln(a.out, "5. 查看库存")
	fmt.Fprintln(a.out, "6. 编辑商品")
	fmt.Fprintln(a.out, "7. 编辑供应商")
	fmt.Fprintln(a.out, "8. 编辑会员")
	fmt.Fprintln(a.out, "9. 供应商列表")
	fmt.Fprintln(a.out, "10. 会员列表")
	fmt.Fprintln(a.out, "11. 会员订单统计")
	fmt.Fprintln(a.out, "12. 退出")
}

// =========================================
// 录入
// =========================================

func (a *App) addProduct() error {
	fmt.Fprintln(a.out, "--- 添加商品 ---")
	id, err := a.prompt.ReadID("商品ID")
	if err != nil {
		return err
	}
	name, err := a.prompt.ReadLine("名称: ")
	if err != nil {
		return err
	}
	stock, err := a.prompt.ReadInt("库存: ")
	if err != nil {
		return err
	}
	price, err := a.prompt.ReadFloat("价格")
	if err != nil {
		return err
	}
	supplierID, err := a.prompt.ReadInt("供应商ID: ")
	if err != nil {
		return err
	}

	a.wh.AddProduct(product.NewProduct(id, name, stock, price, supplierID))
	fmt.Fprintln(a.out, "商品添加成功！")
	return a.pause()
}

func (a *App) addSupplier() error {
	fmt.Fprintln(a.out, "--- 添加供应商 ---")
	id, err := a.prompt.ReadInt("供应商ID: ")
	if err != nil {
		return err
	}
	name, err := a.prompt.ReadLine("名称: ")
	if err != nil {
		return err
	}
	contact, err := a.prompt.ReadLine("联系方式: ")
	if err != nil {
		return err
	}

	a.wh.AddSupplier(supplier.NewSupplier(id, name, contact))
	fmt.Fprintln(a.out, "供应商添加成功！")
	return a.pause()
}

func (a *App) addMember() error {
	fmt.Fprintln(a.out, "--- 添加会员 ---")
	id, err := a.prompt.ReadInt("会员ID: ")
	if err != nil {
		return err
	}
	name, err := a.prompt.ReadLine("姓名: ")
	if err != nil {
		return err
	}
	role, err := a.prompt.ReadLine("角色（employee/customer）: ")
	if err != nil {
		return err
	}
	password, err := a.prompt.ReadLine("密码: ")
	if err != nil {
		return err
	}

	a.wh.AddMember(member.NewMember(id, name, role, password))
	fmt.Fprintln(a.out, "会员添加成功！")
	return a.pause()
}

// =========================================
// 订单
// =========================================

func (a *App) processOrder() error {
	fmt.Fprintln(a.out, "--- 处理订单 ---")
	orderID, err := a.prompt.ReadInt("订单ID: ")
	if err != nil {
		return err
	}
	memberID, err := a.prompt.ReadInt("会员ID: ")
	if err != nil {
		return err
	}

	o := order.NewOrder(orderID, memberID)
	for {
		productID, err := a.prompt.ReadInt("商品ID: ")
		if err != nil {
			return err
		}
		quantity, err := a.prompt.ReadInt("数量: ")
		if err != nil {
			return err
		}
		o.AddItem(order.OrderItem{ProductID: productID, Quantity: quantity})

		more, err := a.prompt.ReadLine("继续添加订单项？(y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(more), "y") {
			break
		}
	}

	if err := a.wh.ProcessOrder(o); err != nil {
		// 订单校验失败属于业务错误：整单丢弃，提示后继续运行
		fmt.Fprintln(a.out, apperrors.GetAppError(err).Message)
		return a.pause()
	}
	fmt.Fprintln(a.out, "订单处理成功！")
	return a.pause()
}

// =========================================
// 报表
// =========================================

func (a *App) showAllStock() error {
	fmt.Fprintln(a.out, "\n--- 当前库存 ---")
	all := a.wh.AllProducts()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "暂无商品。")
		return a.pause()
	}
	renderProductTable(a.out, all)

	// 附带低库存提醒，阈值来自配置
	low := a.wh.LowStockProducts(a.cfg.Report.LowStockThreshold)
	for _, p := range low {
		fmt.Fprintf(a.out, "低库存提醒：%s（ID: %d），当前库存：%d\n", p.Name, p.ID, p.Stock)
	}
	return a.pause()
}

func (a *App) showSupplierList() error {
	fmt.Fprintln(a.out, "\n--- 供应商列表 ---")
	all := a.wh.AllSuppliers()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "暂无供应商。")
		return a.pause()
	}
	renderSupplierTable(a.out, all)
	return a.pause()
}

func (a *App) showMemberList() error {
	fmt.Fprintln(a.out, "\n--- 会员列表 ---")
	all := a.wh.AllMembers()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "暂无会员。")
		return a.pause()
	}
	renderMemberTable(a.out, all)
	return a.pause()
}

func (a *App) showMemberOrderCounts() error {
	fmt.Fprintln(a.out, "\n--- 会员订单统计 ---")
	rows := a.wh.MemberOrderCounts()
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "暂无会员。")
		return a.pause()
	}
	renderMemberOrderCounts(a.out, rows)
	return a.pause()
}

// =========================================
// 编辑（留空保持原值，数值非法时保持原值）
// =========================================

func (a *App) editProduct() error {
	fmt.Fprintln(a.out, "--- 编辑商品 ---")
	id, err := a.prompt.ReadID("请输入要编辑的商品ID")
	if err != nil {
		return err
	}
	current, err := a.wh.ProductByID(id)
	if err != nil {
		fmt.Fprintln(a.out, "商品不存在。")
		return a.pause()
	}

	fmt.Fprintf(a.out, "正在编辑商品：%s\n", current.Name)
	fmt.Fprintln(a.out, "直接回车保持当前值。")

	name, err := a.prompt.ReadLine(fmt.Sprintf("新名称 [%s]: ", current.Name))
	if err != nil {
		return err
	}
	stockInput, err := a.prompt.ReadLine(fmt.Sprintf("新库存 [%d]: ", current.Stock))
	if err != nil {
		return err
	}
	priceInput, err := a.prompt.ReadLine(fmt.Sprintf("新价格 [%s]: ", formatPrice(current.Price)))
	if err != nil {
		return err
	}
	supplierInput, err := a.prompt.ReadLine(fmt.Sprintf("新供应商ID [%d]: ", current.SupplierID))
	if err != nil {
		return err
	}

	editErr := a.wh.EditProduct(id, func(p *product.Product) {
		if name != "" {
			p.Name = name
		}
		a.applyIntInput(stockInput, "库存", &p.Stock)
		a.applyFloatInput(priceInput, "价格", &p.Price)
		a.applyIntInput(supplierInput, "供应商ID", &p.SupplierID)
	})
	if editErr != nil {
		fmt.Fprintln(a.out, "商品不存在。")
		return a.pause()
	}
	fmt.Fprintln(a.out, "商品更新成功！")
	return a.pause()
}

func (a *App) editSupplier() error {
	fmt.Fprintln(a.out, "--- 编辑供应商 ---")
	id, err := a.prompt.ReadInt("请输入要编辑的供应商ID: ")
	if err != nil {
		return err
	}
	current, err := a.wh.SupplierByID(id)
	if err != nil {
		fmt.Fprintln(a.out, "供应商不存在。")
		return a.pause()
	}

	fmt.Fprintf(a.out, "正在编辑供应商：%s\n", current.Name)
	fmt.Fprintln(a.out, "直接回车保持当前值。")

	name, err := a.prompt.ReadLine(fmt.Sprintf("新名称 [%s]: ", current.Name))
	if err != nil {
		return err
	}
	contact, err := a.prompt.ReadLine(fmt.Sprintf("新联系方式 [%s]: ", current.Contact))
	if err != nil {
		return err
	}

	_ = a.wh.EditSupplier(id, func(s *supplier.Supplier) {
		if name != "" {
			s.Name = name
		}
		if contact != "" {
			s.Contact = contact
		}
	})
	fmt.Fprintln(a.out, "供应商更新成功！")
	return a.pause()
}

func (a *App) editMember() error {
	fmt.Fprintln(a.out, "--- 编辑会员 ---")
	id, err := a.prompt.ReadInt("请输入要编辑的会员ID: ")
	if err != nil {
		return err
	}
	current, err := a.wh.MemberByID(id)
	if err != nil {
		fmt.Fprintln(a.out, "会员不存在。")
		return a.pause()
	}

	fmt.Fprintf(a.out, "正在编辑会员：%s\n", current.Name)
	fmt.Fprintln(a.out, "直接回车保持当前值。")

	name, err := a.prompt.ReadLine(fmt.Sprintf("新姓名 [%s]: ", current.Name))
	if err != nil {
		return err
	}
	role, err := a.prompt.ReadLine(fmt.Sprintf("新角色 [%s]: ", current.Role))
	if err != nil {
		return err
	}
	password, err := a.prompt.ReadLine("新密码 [隐藏]: ")
	if err != nil {
		return err
	}

	_ = a.wh.EditMember(id, func(m *member.Member) {
		if name != "" {
			m.Name = name
		}
		if role != "" {
			m.Role = role
		}
		if password != "" {
			m.Password = password
		}
	})
	fmt.Fprintln(a.out, "会员更新成功！")
	return a.pause()
}

// applyIntInput 编辑辅助：空输入或非法数字保持原值
func (a *App) applyIntInput(input, field string, target *int) {
	if input == "" {
		return
	}
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		fmt.Fprintf(a.out, "%s输入无效，保持原值。\n", field)
		a.log.Warn("编辑时的非法数值输入", zap.String("field", field), zap.String("input", input))
		return
	}
	*target = value
}

// applyFloatInput 编辑辅助：空输入或非法数字保持原值
func (a *App) applyFloatInput(input, field string, target *float64) {
	if input == "" {
		return
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		fmt.Fprintf(a.out, "%s输入无效，保持原值。\n", field)
		a.log.Warn("编辑时的非法数值输入", zap.String("field", field), zap.String("input", input))
		return
	}
	*target = value
}

// pause 等待回车（保持原有操作节奏）
func (a *App) pause() error {
	_, err := a.prompt.ReadLine("按回车键继续...")
	return err
}

// clearScreen ANSI清屏
func (a *App) clearScreen() {
	fmt.Fprint(a.out, "\x1b[2J\x1b[H")
}
