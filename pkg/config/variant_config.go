package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/penalty/pkg/embedded"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// VariantGlob 内嵌变体配置文件的匹配模式
const VariantGlob = "data/variants/*.yaml"

// VariantConfig 难度变体配置
//
// 每个变体是同一个射门状态机的一组参数，
// 四个变体（classic / keeper / rebound / showcase）只在数据上不同。
//
// 配置文件位置: data/variants/<id>.yaml
type VariantConfig struct {
	// ID 变体标识（命令行 --variant 使用）
	ID string `yaml:"id"`

	// Name 菜单中显示的名称
	Name string `yaml:"name"`

	// Description 菜单中显示的一行说明
	Description string `yaml:"description"`

	// Order 菜单排序（升序）
	Order int `yaml:"order"`

	Aim        AimConfig        `yaml:"aim"`
	Timing     TimingConfig     `yaml:"timing"`
	Launch     LaunchConfig     `yaml:"launch"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Field      FieldConfig      `yaml:"field"`
	Keeper     KeeperConfig     `yaml:"keeper"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
	Scene      SceneConfig      `yaml:"scene"`
}

// AimConfig 瞄准配置
type AimConfig struct {
	Step  float64 `yaml:"step"`
	Limit float64 `yaml:"limit"`
}

// TimingConfig 时序配置（毫秒）
type TimingConfig struct {
	KickDelayMs  int `yaml:"kickDelayMs"`
	ResetDelayMs int `yaml:"resetDelayMs"`
}

// LaunchConfig 出球速度配置
type LaunchConfig struct {
	LateralGain  float64 `yaml:"lateralGain"`
	VerticalGain float64 `yaml:"verticalGain"`
	ForwardSpeed float64 `yaml:"forwardSpeed"`
}

// PhysicsConfig 积分配置
type PhysicsConfig struct {
	Damping    float64    `yaml:"damping"`
	Epsilon    float64    `yaml:"epsilon"`
	Spawn      [3]float64 `yaml:"spawn"`
	BallRadius float64    `yaml:"ballRadius"`
}

// FieldConfig 场地几何配置
type FieldConfig struct {
	GoalLineZ     float64 `yaml:"goalLineZ"`
	GoalHalfWidth float64 `yaml:"goalHalfWidth"`
	GoalHeight    float64 `yaml:"goalHeight"`
	LateralBound  float64 `yaml:"lateralBound"`
	HeightBound   float64 `yaml:"heightBound"`
	BackBound     float64 `yaml:"backBound"`
}

// KeeperConfig 守门员配置
type KeeperConfig struct {
	DiveReach   float64 `yaml:"diveReach"`
	BlockRadius float64 `yaml:"blockRadius"`
}

// RulesConfig 结算规则配置
type RulesConfig struct {
	// Policy "immediate" 或 "rebound"
	Policy          string  `yaml:"policy"`
	RequireOnTarget bool    `yaml:"requireOnTarget"`
	Restitution     float64 `yaml:"restitution"`
	BounceJitter    float64 `yaml:"bounceJitter"`
	WaitForTrigger  bool    `yaml:"waitForTrigger"`
	Celebrate       bool    `yaml:"celebrate"`
}

// ScoreboardConfig 记分板配置
type ScoreboardConfig struct {
	Enabled         bool      `yaml:"enabled"`
	Teams           [2]string `yaml:"teams"`
	AttemptsPerTurn int       `yaml:"attemptsPerTurn"`
}

// SceneConfig 渲染相关配置
type SceneConfig struct {
	// Sky 天空颜色（#rrggbb）
	Sky string `yaml:"sky"`

	// Grass 草地颜色（#rrggbb）
	Grass string `yaml:"grass"`

	Camera CameraConfig `yaml:"camera"`
}

// CameraConfig 透视摄像机配置
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	// FOV 垂直视角（度）
	FOV float64 `yaml:"fov"`
}

// DefaultVariantConfig 返回 classic 变体的完整默认配置
// 解析 YAML 时以此为底，文件中缺省的字段保留默认值
func DefaultVariantConfig() VariantConfig {
	p := shootout.DefaultParams()
	return VariantConfig{
		ID:          "classic",
		Name:        "Classic",
		Description: "Aim and shoot. The keeper guesses.",
		Order:       1,
		Aim:         AimConfig{Step: p.AimStep, Limit: p.AimLimit},
		Timing: TimingConfig{
			KickDelayMs:  int(p.KickDelay / time.Millisecond),
			ResetDelayMs: int(p.ResetDelay / time.Millisecond),
		},
		Launch: LaunchConfig{
			LateralGain:  p.LateralGain,
			VerticalGain: p.VerticalGain,
			ForwardSpeed: p.ForwardSpeed,
		},
		Physics: PhysicsConfig{
			Damping:    p.Damping,
			Epsilon:    p.Epsilon,
			Spawn:      [3]float64{p.Spawn[0], p.Spawn[1], p.Spawn[2]},
			BallRadius: p.BallRadius,
		},
		Field: FieldConfig{
			GoalLineZ:     p.GoalLineZ,
			GoalHalfWidth: p.GoalHalfWidth,
			GoalHeight:    p.GoalHeight,
			LateralBound:  p.LateralBound,
			HeightBound:   p.HeightBound,
			BackBound:     p.BackBound,
		},
		Keeper: KeeperConfig{DiveReach: p.DiveReach, BlockRadius: p.BlockRadius},
		Rules: RulesConfig{
			Policy:          p.Policy.String(),
			RequireOnTarget: p.RequireOnTarget,
			Restitution:     p.Restitution,
			BounceJitter:    p.BounceJitter,
			WaitForTrigger:  p.WaitForTrigger,
			Celebrate:       p.Celebrate,
		},
		Scoreboard: ScoreboardConfig{
			Enabled:         p.Ledger.Enabled,
			Teams:           p.Ledger.Teams,
			AttemptsPerTurn: p.Ledger.AttemptsPerTurn,
		},
		Scene: SceneConfig{
			Sky:   "#87ceeb",
			Grass: "#2e8b57",
			Camera: CameraConfig{
				Eye:    [3]float64{2, 3, 10},
				Target: [3]float64{0, 1.5, -15},
				FOV:    75,
			},
		},
	}
}

// ParseVariantConfig 解析并验证变体配置
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *VariantConfig: 解析成功后的配置（缺省字段取默认值）
//   - error: 解析或验证失败时返回错误
func ParseVariantConfig(data []byte) (*VariantConfig, error) {
	config := DefaultVariantConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse variant config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid variant config %q: %w", config.ID, err)
	}

	return &config, nil
}

// LoadVariantConfig 从磁盘加载单个变体配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *VariantConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadVariantConfig(path string) (*VariantConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variant config: %w", err)
	}
	return ParseVariantConfig(data)
}

// LoadVariants 加载所有内嵌的变体配置，按 Order 升序排列
// ID 重复时返回错误
func LoadVariants() ([]*VariantConfig, error) {
	paths, err := embedded.Glob(VariantGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list variant configs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no variant configs found in %s", VariantGlob)
	}

	variants := make([]*VariantConfig, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		v, err := ParseVariantConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, ok := seen[v.ID]; ok {
			return nil, fmt.Errorf("duplicate variant id %q in %s and %s", v.ID, prev, path)
		}
		seen[v.ID] = path
		variants = append(variants, v)
	}

	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].Order != variants[j].Order {
			return variants[i].Order < variants[j].Order
		}
		return variants[i].ID < variants[j].ID
	})
	return variants, nil
}

// FindVariant 按 ID 查找变体
func FindVariant(variants []*VariantConfig, id string) (*VariantConfig, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// Validate 验证配置的合法性
func (c *VariantConfig) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("id must not be empty")
	}
	if c.Aim.Step <= 0 {
		return fmt.Errorf("aim.step must be positive, got %v", c.Aim.Step)
	}
	if c.Aim.Limit <= 0 {
		return fmt.Errorf("aim.limit must be positive, got %v", c.Aim.Limit)
	}
	if c.Timing.KickDelayMs < 0 || c.Timing.ResetDelayMs < 0 {
		return fmt.Errorf("timing delays must not be negative")
	}
	if c.Launch.ForwardSpeed <= 0 {
		return fmt.Errorf("launch.forwardSpeed must be positive, got %v", c.Launch.ForwardSpeed)
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		return fmt.Errorf("physics.damping must be in (0, 1], got %v", c.Physics.Damping)
	}
	if c.Physics.Epsilon <= 0 {
		return fmt.Errorf("physics.epsilon must be positive, got %v", c.Physics.Epsilon)
	}
	if c.Physics.BallRadius <= 0 {
		return fmt.Errorf("physics.ballRadius must be positive, got %v", c.Physics.BallRadius)
	}
	if c.Field.GoalHalfWidth <= 0 || c.Field.GoalHeight <= 0 {
		return fmt.Errorf("goal size must be positive, got half width %v height %v",
			c.Field.GoalHalfWidth, c.Field.GoalHeight)
	}
	if c.Field.GoalLineZ >= c.Physics.Spawn[2] {
		return fmt.Errorf("field.goalLineZ (%v) must be in front of spawn z (%v)",
			c.Field.GoalLineZ, c.Physics.Spawn[2])
	}
	if c.Field.LateralBound <= c.Field.GoalHalfWidth {
		return fmt.Errorf("field.lateralBound (%v) must exceed goalHalfWidth (%v)",
			c.Field.LateralBound, c.Field.GoalHalfWidth)
	}
	if c.Field.HeightBound <= c.Field.GoalHeight {
		return fmt.Errorf("field.heightBound (%v) must exceed goalHeight (%v)",
			c.Field.HeightBound, c.Field.GoalHeight)
	}
	if c.Field.BackBound <= c.Physics.Spawn[2] {
		return fmt.Errorf("field.backBound (%v) must be behind spawn z (%v)",
			c.Field.BackBound, c.Physics.Spawn[2])
	}
	if c.Keeper.DiveReach < 0 {
		return fmt.Errorf("keeper.diveReach must not be negative, got %v", c.Keeper.DiveReach)
	}
	if c.Keeper.BlockRadius <= 0 {
		return fmt.Errorf("keeper.blockRadius must be positive, got %v", c.Keeper.BlockRadius)
	}
	if _, ok := shootout.ParsePolicy(c.Rules.Policy); !ok {
		return fmt.Errorf("unknown rules.policy %q (want immediate or rebound)", c.Rules.Policy)
	}
	if c.Rules.Restitution < 0 || c.Rules.Restitution > 1 {
		return fmt.Errorf("rules.restitution must be in [0, 1], got %v", c.Rules.Restitution)
	}
	if c.Rules.BounceJitter < 0 {
		return fmt.Errorf("rules.bounceJitter must not be negative, got %v", c.Rules.BounceJitter)
	}
	if c.Scoreboard.Enabled {
		if c.Scoreboard.AttemptsPerTurn <= 0 {
			return fmt.Errorf("scoreboard.attemptsPerTurn must be positive, got %d", c.Scoreboard.AttemptsPerTurn)
		}
		for i, name := range c.Scoreboard.Teams {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("scoreboard.teams[%d] must not be empty", i)
			}
		}
	}
	if c.Scene.Camera.FOV <= 0 || c.Scene.Camera.FOV >= 180 {
		return fmt.Errorf("scene.camera.fov must be in (0, 180), got %v", c.Scene.Camera.FOV)
	}
	if _, err := ParseHexColor(c.Scene.Sky); err != nil {
		return fmt.Errorf("scene.sky: %w", err)
	}
	if _, err := ParseHexColor(c.Scene.Grass); err != nil {
		return fmt.Errorf("scene.grass: %w", err)
	}
	return nil
}

// ToParams 转换为状态机参数
// 调用前配置应已通过 Validate()
func (c *VariantConfig) ToParams() shootout.Params {
	policy, _ := shootout.ParsePolicy(c.Rules.Policy)
	return shootout.Params{
		AimStep:         c.Aim.Step,
		AimLimit:        c.Aim.Limit,
		KickDelay:       time.Duration(c.Timing.KickDelayMs) * time.Millisecond,
		ResetDelay:      time.Duration(c.Timing.ResetDelayMs) * time.Millisecond,
		LateralGain:     c.Launch.LateralGain,
		VerticalGain:    c.Launch.VerticalGain,
		ForwardSpeed:    c.Launch.ForwardSpeed,
		Damping:         c.Physics.Damping,
		Epsilon:         c.Physics.Epsilon,
		Spawn:           mgl64.Vec3(c.Physics.Spawn),
		BallRadius:      c.Physics.BallRadius,
		GoalLineZ:       c.Field.GoalLineZ,
		GoalHalfWidth:   c.Field.GoalHalfWidth,
		GoalHeight:      c.Field.GoalHeight,
		LateralBound:    c.Field.LateralBound,
		HeightBound:     c.Field.HeightBound,
		BackBound:       c.Field.BackBound,
		DiveReach:       c.Keeper.DiveReach,
		BlockRadius:     c.Keeper.BlockRadius,
		RequireOnTarget: c.Rules.RequireOnTarget,
		Policy:          policy,
		Restitution:     c.Rules.Restitution,
		BounceJitter:    c.Rules.BounceJitter,
		WaitForTrigger:  c.Rules.WaitForTrigger,
		Celebrate:       c.Rules.Celebrate,
		Ledger: shootout.LedgerParams{
			Enabled:         c.Scoreboard.Enabled,
			Teams:           c.Scoreboard.Teams,
			AttemptsPerTurn: c.Scoreboard.AttemptsPerTurn,
		},
	}
}

// CameraEye 返回摄像机位置
func (c *VariantConfig) CameraEye() mgl64.Vec3 {
	return mgl64.Vec3(c.Scene.Camera.Eye)
}

// CameraTarget 返回摄像机注视点
func (c *VariantConfig) CameraTarget() mgl64.Vec3 {
	return mgl64.Vec3(c.Scene.Camera.Target)
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
