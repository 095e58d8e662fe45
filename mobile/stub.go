//go:build !mobile

// 普通构建时 mobile.go 不参与编译，保留一个空的 Dummy 让包仍可被引用
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
