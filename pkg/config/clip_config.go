package config

import (
	"fmt"
	"time"

	"github.com/decker502/penalty/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ClipConfigPath 内嵌动画片段配置的路径
const ClipConfigPath = "data/clips.yaml"

// ClipConfig 动画片段库配置
//
// 每个单位（striker / keeper）拥有若干命名片段，
// 片段名与状态机使用的名称一致（idle、kick、celebrate、dive_left、dive_right）。
//
// 配置文件位置: data/clips.yaml
type ClipConfig struct {
	Units map[string]UnitClips `yaml:"units"`
}

// UnitClips 单个单位的片段列表
type UnitClips struct {
	Clips []ClipDef `yaml:"clips"`
}

// ClipDef 单个动画片段
type ClipDef struct {
	Name string `yaml:"name"`

	// DurationMs 片段时长（毫秒）
	DurationMs int `yaml:"durationMs"`

	// Loop 是否循环播放
	Loop bool `yaml:"loop"`

	// Frames 片段的关键帧数量，渲染时用于离散化姿态
	Frames int `yaml:"frames"`
}

// Duration 返回片段时长
func (d ClipDef) Duration() time.Duration {
	return time.Duration(d.DurationMs) * time.Millisecond
}

// ParseClipConfig 解析并验证片段配置
func ParseClipConfig(data []byte) (*ClipConfig, error) {
	var config ClipConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse clip config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clip config: %w", err)
	}

	return &config, nil
}

// LoadClipConfig 加载内嵌的片段配置
func LoadClipConfig() (*ClipConfig, error) {
	data, err := embedded.ReadFile(ClipConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip config: %w", err)
	}
	return ParseClipConfig(data)
}

// Validate 验证配置的合法性
func (c *ClipConfig) Validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("no units defined")
	}
	for unit, clips := range c.Units {
		seen := make(map[string]bool, len(clips.Clips))
		for i, clip := range clips.Clips {
			if clip.Name == "" {
				return fmt.Errorf("unit %s clip #%d: name must not be empty", unit, i)
			}
			if seen[clip.Name] {
				return fmt.Errorf("unit %s: duplicate clip %q", unit, clip.Name)
			}
			seen[clip.Name] = true
			if clip.DurationMs <= 0 {
				return fmt.Errorf("unit %s clip %s: durationMs must be positive, got %d", unit, clip.Name, clip.DurationMs)
			}
			if clip.Frames < 0 {
				return fmt.Errorf("unit %s clip %s: frames must not be negative, got %d", unit, clip.Name, clip.Frames)
			}
		}
	}
	return nil
}

// Lookup 查找某个单位的片段
func (c *ClipConfig) Lookup(unit, name string) (ClipDef, bool) {
	clips, ok := c.Units[unit]
	if !ok {
		return ClipDef{}, false
	}
	for _, clip := range clips.Clips {
		if clip.Name == name {
			return clip, true
		}
	}
	return ClipDef{}, false
}
