package utils

import "github.com/google/uuid"

// NewID 服务端统一分配主键，创建请求里带的 id 一律忽略
func NewID() string { return uuid.NewString() }
