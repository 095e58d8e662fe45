package main

import (
	"log"
	"time"

	"github.com/decker502/penalty/pkg/game"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerAudio 通过 beep speaker 播放音效的事件订阅者
type speakerAudio struct {
	bank     *game.SoundBank
	settings *game.SettingsManager
	ready    bool
}

// newSpeakerAudio 初始化扬声器
// 初始化失败不影响游戏，只是没有声音
func newSpeakerAudio(bank *game.SoundBank, settings *game.SettingsManager) *speakerAudio {
	a := &speakerAudio{bank: bank, settings: settings}

	sampleRate := beep.SampleRate(game.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Audio] Speaker initialization failed: %v", err)
		return a
	}
	a.ready = true
	return a
}

// OnEvent 实现 shootout.Listener
func (a *speakerAudio) OnEvent(e shootout.Event) {
	id, ok := game.SoundForEvent(e)
	if !ok || !a.ready || !a.settings.GetSettings().SoundEnabled {
		return
	}
	if s := a.bank.Streamer(id); s != nil {
		speaker.Play(s)
	}
}

// toggleMute 切换静音，返回切换后是否有声
func (a *speakerAudio) toggleMute() bool {
	enabled := a.settings.ToggleSound()
	if !enabled && a.ready {
		speaker.Clear()
	}
	return enabled
}

// close 关闭扬声器
func (a *speakerAudio) close() {
	if a.ready {
		speaker.Close()
	}
}
