package supplier

import (
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// 供应商领域错误定义
var (
	// ErrSupplierNotFound 供应商不存在
	ErrSupplierNotFound = apperrors.New(apperrors.ErrCodeSupplierNotFound, "供应商不存在")
)
