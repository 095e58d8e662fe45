package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (variant menu, penalty pitch).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被替换时调用
// 用于停止后台加载、静音正在播放的音效
type Closer interface {
	Close()
}
