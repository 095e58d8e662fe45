package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在端点处取 0 和 1
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseLinear":     EaseLinear,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutBack":    EaseOutBack,
	}
	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			if v := f(0); math.Abs(v) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := f(1); math.Abs(v-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
		})
	}
}

// TestEasingMidpoints 测试中点值
func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		f        func(float64) float64
		input    float64
		expected float64
	}{
		{"EaseOutCubic 中点", EaseOutCubic, 0.5, 0.875}, // 1 - (1-0.5)^3
		{"EaseInOutCubic 四分之一", EaseInOutCubic, 0.25, 0.0625},
		{"EaseInOutCubic 中点", EaseInOutCubic, 0.5, 0.5},
		{"EaseSine 中点", EaseSine, 0.5, 1},
		{"EaseSine 终点", EaseSine, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.f(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutBackOvershoots 回弹缓出在中途越过终点
func TestEaseOutBackOvershoots(t *testing.T) {
	if v := EaseOutBack(0.7); v <= 1 {
		t.Errorf("EaseOutBack(0.7) = %v, 期望大于 1", v)
	}
}

// TestClamp01AndLerp 测试限幅和插值
func TestClamp01AndLerp(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 returned wrong value")
	}
	if v := Lerp(-2, 2, 0.25); v != -1 {
		t.Errorf("Lerp(-2, 2, 0.25) = %v, 期望 -1", v)
	}
}
