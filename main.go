package main

import (
	"flag"
	"log"

	"github.com/decker502/penalty/data"
	"github.com/decker502/penalty/pkg/app"
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	variant = flag.String("variant", "", "直接进入指定变体（classic / keeper / rebound / showcase），为空显示菜单")
	seed    = flag.Int64("seed", 0, "守门员随机数种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Variant: *variant,
		Seed:    *seed,
	})
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
