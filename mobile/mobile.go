//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 触摸屏幕左侧/右侧三分之一瞄准，中间射门。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.penalty -o build/android/penalty.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Penalty.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/penalty/data"
	"github.com/decker502/penalty/pkg/app"
	"github.com/decker502/penalty/pkg/embedded"
)

func init() {
	embedded.Init(data.FS)

	// 移动端没有命令行参数，从菜单开始
	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
