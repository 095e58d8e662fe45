// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/game"
	"github.com/decker502/penalty/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Variant 指定直接进入的变体（如 "rebound"），为空则显示菜单
	Variant string
	// Seed 守门员随机数种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载变体配置
	variants, err := config.LoadVariants()
	if err != nil {
		return nil, fmt.Errorf("变体配置加载失败: %w", err)
	}
	log.Printf("[Config] 成功加载 %d 个变体配置", len(variants))

	if cfg.Variant != "" {
		if _, ok := config.FindVariant(variants, cfg.Variant); !ok {
			return nil, fmt.Errorf("未知变体: %s", cfg.Variant)
		}
	}

	// 动画片段在后台加载，加载完成前场景照常运行
	clips := game.NewClipLibrary()
	clips.LoadAsync(config.LoadClipConfig)

	// 初始化音频
	soundBank, err := game.NewSoundBank(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("音效合成失败: %w", err)
	}
	settingsManager := game.NewSettingsManager()
	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate), soundBank, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	res := &scenes.Resources{
		Variants: variants,
		Audio:    audioManager,
		Clips:    clips,
		Seed:     cfg.Seed,
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(variantID string) game.Scene {
		scene, err := scenes.NewPenaltyScene(res, sceneManager, variantID)
		if err != nil {
			log.Printf("[App] %v", err)
			return nil
		}
		return scene
	})
	sceneManager.SetMenuFactory(func() game.Scene {
		return scenes.NewMenuScene(res, sceneManager)
	})

	// 根据配置决定启动场景
	if cfg.Variant != "" {
		log.Printf("[App] Starting variant: %s", cfg.Variant)
		if !sceneManager.LoadVariant(cfg.Variant) {
			return nil, fmt.Errorf("变体场景创建失败: %s", cfg.Variant)
		}
	} else {
		sceneManager.ShowMenu()
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
