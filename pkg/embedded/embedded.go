// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在 data 包（data/data.go）中。
// 本包提供包装函数，让其他包可以用 "data/..." 形式的路径访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// pathPrefix 所有资源路径的统一前缀
const pathPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 未调用 Init() 时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化数据文件系统
// fsys 的根目录对应资源路径中的 "data/"
// 必须在 main() 开始时、任何资源加载之前调用
func Init(fsys fs.FS) {
	dataFS = fsys
	initialized = fsys != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 把 "data/xxx" 路径转换为文件系统内的相对路径
func resolve(path string) (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if path == "data" {
		return ".", nil
	}
	if !strings.HasPrefix(path, pathPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, pathPrefix)
	}
	return strings.TrimPrefix(path, pathPrefix), nil
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(name)
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, name)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配资源文件
// 返回的路径带有 "data/" 前缀，可以直接传回 ReadFile
func Glob(pattern string) ([]string, error) {
	name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := fs.Glob(dataFS, name)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = pathPrefix + m
	}
	return matches, nil
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(dataFS, name)
}
