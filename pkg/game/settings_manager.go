package game

import "log"

// GameSettings 运行期游戏设置
// 只保存在内存中，进程退出即丢弃
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    // 音效开关（M 键切换）

	// 显示设置
	Fullscreen bool
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责运行期设置的读写，所有场景共享同一实例
type SettingsManager struct {
	settings *GameSettings
}

// NewSettingsManager 创建新的设置管理器实例
func NewSettingsManager() *SettingsManager {
	return &SettingsManager{settings: DefaultSettings()}
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
	log.Printf("[SettingsManager] Sound enabled: %v", enabled)
}

// ToggleSound 切换音效开关，返回切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.SetSoundEnabled(!sm.settings.SoundEnabled)
	return sm.settings.SoundEnabled
}

// SetFullscreen 记录全屏状态
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
