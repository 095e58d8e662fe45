package scenes

import (
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Resources 场景之间共享的资源和服务
type Resources struct {
	// Variants 已加载并排序的变体配置
	Variants []*config.VariantConfig
	// Audio 音频管理器，可为 nil（无声）
	Audio *game.AudioManager
	// Clips 动画片段库，可为 nil（不播放动画）
	Clips *game.ClipLibrary
	// Seed 守门员随机数种子，0 表示使用当前时间
	Seed int64
}
