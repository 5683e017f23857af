package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/member"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/supplier"
	"github.com/xiebiao/inventory/internal/domain/warehouse"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Data: config.DataConfig{
			Dir:           dir,
			ProductsFile:  "products.txt",
			SuppliersFile: "suppliers.txt",
			MembersFile:   "members.txt",
		},
	}
}

// TestProductFile_RoundTrip 测试商品集合保存后重新加载，逐字段一致
func TestProductFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	f := NewProductFile(path, zap.NewNop())

	in := []product.Product{
		{ID: 1, Name: "苹果", Stock: 5, Price: 2.5, SupplierID: 100},
		{ID: 2, Name: "有 空格 的名字", Stock: 0, Price: 0.01, SupplierID: 0},
		{ID: 3, Name: "C", Stock: 99999, Price: 1234.56, SupplierID: 7},
	}
	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range in {
		require.Equal(t, in[i], *out[i])
	}
}

// TestProductFile_MalformedLines 测试损坏行跳过、完好行正常加载
func TestProductFile_MalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	content := "1\t苹果\t5\t2.5\t100\n" +
		"2\t香蕉\tabc\t1.8\t100\n" + // 库存字段非数字
		"垃圾行\n" + // 字段数不对
		"x\t名\t1\t1.0\t1\n" + // ID非数字
		"3\t梨\t7\t3.0\t200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := NewProductFile(path, zap.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].ID)
	require.Equal(t, 3, out[1].ID)
}

// TestProductFile_Missing 测试文件不存在视为空集合
func TestProductFile_Missing(t *testing.T) {
	f := NewProductFile(filepath.Join(t.TempDir(), "nope.txt"), zap.NewNop())
	out, err := f.Load()
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestSupplierFile_RoundTrip 测试供应商集合往返
func TestSupplierFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.txt")
	f := NewSupplierFile(path, zap.NewNop())

	in := []supplier.Supplier{
		{ID: 1, Name: "华东仓", Contact: "021-1234567"},
		{ID: 2, Name: "华南仓", Contact: "mail@example.com"},
	}
	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		require.Equal(t, in[i], *out[i])
	}
}

// TestMemberFile_RoundTrip 测试会员集合往返（密码字段原样保存）
func TestMemberFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.txt")
	f := NewMemberFile(path, zap.NewNop())

	in := []member.Member{
		{ID: 1, Name: "小王", Role: "employee", Password: "pw123"},
		{ID: 2, Name: "小李", Role: "customer", Password: ""},
	}
	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		require.Equal(t, in[i], *out[i])
	}
}

// TestMemberFile_MalformedLines 测试会员文件损坏行跳过
func TestMemberFile_MalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.txt")
	content := "1\t小王\temployee\tpw\n" +
		"二\t小李\tcustomer\tpw\n" + // ID非数字
		"3\t只有三个字段\tx\n" + // 字段数不对
		"4\t小张\tcustomer\tpw2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := NewMemberFile(path, zap.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].ID)
	require.Equal(t, 4, out[1].ID)
}

// TestStore_SaveAllLoadAll 测试整仓往返：保存后加载到新仓库，记录逐字段一致
func TestStore_SaveAllLoadAll(t *testing.T) {
	cfg := testConfig(t.TempDir())
	store := NewStore(cfg, zap.NewNop())

	src := warehouse.New()
	src.AddProduct(product.NewProduct(1, "苹果", 5, 2.5, 100))
	src.AddProduct(product.NewProduct(2, "香蕉", 8, 1.8, 100))
	src.AddSupplier(supplier.NewSupplier(100, "华东仓", "021-1234567"))
	src.AddMember(member.NewMember(7, "小王", "employee", "pw123"))
	require.NoError(t, store.SaveAll(src))

	dst := warehouse.New()
	require.NoError(t, store.LoadAll(dst))

	require.Equal(t, src.AllProducts(), dst.AllProducts())
	require.Equal(t, src.AllSuppliers(), dst.AllSuppliers())
	require.Equal(t, src.AllMembers(), dst.AllMembers())
	// 订单不持久化
	require.Equal(t, 0, dst.OrderCount())
}

// TestStore_LoadAll_DuplicateID 测试文件内重复ID：后出现的记录覆盖先出现的
func TestStore_LoadAll_DuplicateID(t *testing.T) {
	cfg := testConfig(t.TempDir())
	content := "1\t旧名\t5\t2.5\t100\n1\t新名\t9\t3.0\t200\n"
	require.NoError(t, os.WriteFile(cfg.Data.ProductsPath(), []byte(content), 0o644))

	w := warehouse.New()
	require.NoError(t, NewStore(cfg, zap.NewNop()).LoadAll(w))

	p, err := w.ProductByID(1)
	require.NoError(t, err)
	require.Equal(t, "新名", p.Name)
	require.Equal(t, 9, p.Stock)
	require.Len(t, w.AllProducts(), 1)
}

// TestStore_LoadAll_MissingDir 测试数据目录为空目录时三个集合均为空
func TestStore_LoadAll_MissingDir(t *testing.T) {
	cfg := testConfig(t.TempDir())
	w := warehouse.New()
	require.NoError(t, NewStore(cfg, zap.NewNop()).LoadAll(w))
	require.Empty(t, w.AllProducts())
	require.Empty(t, w.AllSuppliers())
	require.Empty(t, w.AllMembers())
}
