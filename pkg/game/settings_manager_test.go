package game

import "testing"

// TestSettingsDefaults 测试默认设置
func TestSettingsDefaults(t *testing.T) {
	sm := NewSettingsManager()
	s := sm.GetSettings()
	if !s.SoundEnabled || s.SoundVolume != 0.8 || s.Fullscreen {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

// TestSettingsVolumeClamp 测试音量限幅
func TestSettingsVolumeClamp(t *testing.T) {
	sm := NewSettingsManager()

	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		sm.SetSoundVolume(tt.in)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestSettingsToggleSound 测试静音切换
func TestSettingsToggleSound(t *testing.T) {
	sm := NewSettingsManager()
	if sm.ToggleSound() {
		t.Error("first toggle should mute")
	}
	if !sm.ToggleSound() {
		t.Error("second toggle should unmute")
	}
}
