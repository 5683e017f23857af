package member

// Member 会员实体（员工/顾客）
// 设计说明:
//  1. Role为自由文本，约定取值employee/customer，不做强校验
//  2. 密码以明文存储、明文比对——沿用既有数据文件格式的兼容性要求，
//     已知的安全缺陷，不在本版本修复（见DESIGN.md）
type Member struct {
	ID       int
	Name     string
	Role     string
	Password string
}

// NewMember 创建新会员（工厂方法）
func NewMember(id int, name, role, password string) *Member {
	return &Member{
		ID:       id,
		Name:     name,
		Role:     role,
		Password: password,
	}
}

// Authenticate 校验密码（精确字符串比对）
func (m *Member) Authenticate(pwd string) bool {
	return pwd == m.Password
}
