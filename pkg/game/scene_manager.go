package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定变体的射门场景，避免循环依赖
type SceneFactory func(variantID string) Scene

// MenuFactory 菜单场景工厂函数类型
type MenuFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 射门场景工厂
	menuFactory  MenuFactory  // 菜单场景工厂
	variantID    string       // 当前场景对应的变体（菜单时为空）
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置射门场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetMenuFactory 设置菜单场景工厂函数
func (sm *SceneManager) SetMenuFactory(factory MenuFactory) {
	sm.menuFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentVariant 返回当前射门场景的变体ID，菜单中返回空字符串
func (sm *SceneManager) CurrentVariant() string {
	return sm.variantID
}

// LoadVariant 加载指定变体的射门场景
// variantID: 变体ID，如 "classic", "rebound"
// 返回是否切换成功
func (sm *SceneManager) LoadVariant(variantID string) bool {
	log.Printf("[SceneManager] 加载变体: %s", variantID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(variantID)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建变体场景: %s", variantID)
		return false
	}

	sm.SwitchTo(newScene)
	sm.variantID = variantID
	log.Printf("[SceneManager] 成功切换到变体: %s", variantID)
	return true
}

// ShowMenu 切换到变体选择菜单
func (sm *SceneManager) ShowMenu() bool {
	if sm.menuFactory == nil {
		log.Printf("[SceneManager] 错误: MenuFactory 未设置")
		return false
	}

	menu := sm.menuFactory()
	if menu == nil {
		return false
	}
	sm.SwitchTo(menu)
	sm.variantID = ""
	log.Printf("[SceneManager] 切换到菜单")
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
