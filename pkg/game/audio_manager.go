package game

import (
	"log"

	"github.com/decker502/penalty/pkg/shootout"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理射门过程中的所有音效
//   - 实现音量控制和静音（从 SettingsManager 读取设置）
//   - 作为 shootout.Listener 订阅状态机事件并播放对应音效
type AudioManager struct {
	context         *audio.Context            // 音频上下文，可为 nil（无声模式）
	bank            *SoundBank                // 预合成的音效数据
	settingsManager *SettingsManager          // 设置管理器（用于读取音量设置）
	soundPlayers    map[SoundID]*audio.Player // 音效播放器缓存
	played          map[SoundID]int           // 播放次数（调试用）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（为 nil 时所有播放请求都被忽略）
//   - bank: 预合成的音效数据
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, bank *SoundBank, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		bank:            bank,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
		played:          make(map[SoundID]int),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	// 检查音效是否启用
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	am.played[id]++

	return true
}

// StopAll 暂停所有正在播放的音效（静音或离开场景时调用）
func (am *AudioManager) StopAll() {
	for _, player := range am.soundPlayers {
		player.Pause()
	}
}

// ToggleMute 切换静音，返回切换后是否有声
func (am *AudioManager) ToggleMute() bool {
	if am.settingsManager == nil {
		return false
	}
	enabled := am.settingsManager.ToggleSound()
	if !enabled {
		am.StopAll()
	}
	return enabled
}

// Muted 当前是否静音
func (am *AudioManager) Muted() bool {
	return am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// PlayCount 返回音效的播放次数
func (am *AudioManager) PlayCount(id SoundID) int {
	return am.played[id]
}

// OnEvent 实现 shootout.Listener，把状态机事件映射为音效
func (am *AudioManager) OnEvent(e shootout.Event) {
	if id, ok := SoundForEvent(e); ok {
		am.PlaySound(id)
	}
}

// Preload 预创建所有音效播放器
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) Preload() {
	for _, id := range AllSounds {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// SoundForEvent 返回事件对应的音效
func SoundForEvent(e shootout.Event) (SoundID, bool) {
	switch e.Kind {
	case shootout.EventKick:
		return SoundWhistle, true
	case shootout.EventLaunch:
		return SoundKick, true
	case shootout.EventDeflect:
		return SoundBounce, true
	case shootout.EventGoal:
		return SoundGoal, true
	case shootout.EventSave:
		return SoundSave, true
	case shootout.EventMiss:
		return SoundMiss, true
	default:
		return "", false
	}
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(id SoundID) *audio.Player {
	if player, exists := am.soundPlayers[id]; exists {
		return player
	}
	if am.context == nil || am.bank == nil {
		return nil
	}

	pcm := am.bank.PCM(id)
	if len(pcm) == 0 {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[id] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
