package service

import "errors"

// 核心操作的确定性错误类型,handler 通过 errors.Is 映射为对应的HTTP状态码。
// 这些错误都不应重试:它们由调用方的输入或权限状态决定。
var (
	// ErrNotFound 引用的文章/用户/标签不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrForbidden 权限校验未通过
	ErrForbidden = errors.New("没有操作权限")
	// ErrUnauthenticated 匿名用户尝试需要登录的操作
	ErrUnauthenticated = errors.New("未登录")
	// ErrIntegrity 级联删除中途失败,事务已回滚
	ErrIntegrity = errors.New("数据完整性错误")
	// ErrTooManyAttempts 登录失败次数超限
	ErrTooManyAttempts = errors.New("登录尝试次数过多")
)
