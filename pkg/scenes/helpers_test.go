package scenes

import (
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 测试用空场景
type stubScene struct {
	updates int
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}

// testVariants 两个最简单的变体
func testVariants() []*config.VariantConfig {
	classic := config.DefaultVariantConfig()
	classic.ID = "classic"
	classic.Name = "Classic"
	classic.Order = 1

	keeper := config.DefaultVariantConfig()
	keeper.ID = "keeper"
	keeper.Name = "Keeper"
	keeper.Order = 2
	keeper.Scoreboard.Enabled = false
	keeper.Rules.RequireOnTarget = true
	keeper.Rules.WaitForTrigger = true

	return []*config.VariantConfig{&classic, &keeper}
}

// newTestManager 创建记录加载请求的场景管理器
func newTestManager(loaded *[]string) *game.SceneManager {
	sm := game.NewSceneManager()
	sm.SetSceneFactory(func(variantID string) game.Scene {
		*loaded = append(*loaded, variantID)
		return &stubScene{}
	})
	sm.SetMenuFactory(func() game.Scene {
		return &stubScene{}
	})
	return sm
}
