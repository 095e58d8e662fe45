// Package data 内嵌游戏数据文件（变体配置和动画片段库）
package data

import "embed"

// FS 内嵌的数据文件系统，根目录对应资源路径中的 "data/"
//
//go:embed variants clips.yaml
var FS embed.FS
