package utils

import (
	"strings"
	"testing"
)

// TestWrapWords 测试按单词换行（每个字符宽度为 1）
func TestWrapWords(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "Aim and shoot", 100, []string{"Aim and shoot"}},
		{"长文本自动换行", "Saved shots bounce back into play", 12, []string{"Saved shots", "bounce back", "into play"}},
		{"超长单词独占一行", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"空白文本", "   ", 10, []string{"   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.input, tt.maxWidth, measure)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapWords(%q) = %q, 期望 %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestLoadFace 测试内置字体加载
func TestLoadFace(t *testing.T) {
	face, err := LoadFace(18)
	if err != nil {
		t.Fatalf("LoadFace failed: %v", err)
	}
	if face.Size != 18 {
		t.Errorf("Size = %v, 期望 18", face.Size)
	}

	other, err := LoadFace(32)
	if err != nil {
		t.Fatal(err)
	}
	if other.Source != face.Source {
		t.Error("字体源应只解析一次")
	}

	if w := measureTextWidth("GOAL!", face); w <= 0 {
		t.Errorf("measureTextWidth = %v, 期望正数", w)
	}
}
