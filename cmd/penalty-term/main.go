// penalty-term 终端版点球游戏
//
// 与图形版共享变体配置、状态机、ECS 实体和音效，只把渲染换成 tcell 字符画。
//
// 用法:
//
//	go run ./cmd/penalty-term --variant rebound --seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/penalty/data"
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/embedded"
	"github.com/decker502/penalty/pkg/entities"
	"github.com/decker502/penalty/pkg/game"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/decker502/penalty/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	variantFlag = flag.String("variant", "classic", "变体ID（classic / keeper / rebound / showcase）")
	seedFlag    = flag.Int64("seed", 0, "守门员随机数种子，0 表示使用当前时间")
	fpsFlag     = flag.Int("fps", 60, "每秒帧数")
	logFlag     = flag.String("log", "", "日志文件路径，为空则不输出日志")
	muteFlag    = flag.Bool("mute", false, "启动时静音")
)

// termGame 终端游戏
type termGame struct {
	screen tcell.Screen
	title  string

	em      *ecs.EntityManager
	rig     entities.Rig
	session *shootout.Session

	clipSystem *systems.ClipSystem
	syncSystem *systems.SessionSyncSystem
	audio      *speakerAudio
	settings   *game.SettingsManager

	start    time.Time
	lastTick time.Time
}

// newTermGame 组装会话和 ECS，不涉及终端
func newTermGame(variant *config.VariantConfig, clips *config.ClipConfig, seed int64) *termGame {
	params := variant.ToParams()
	em := ecs.NewEntityManager()
	rig := entities.NewRig(em, params)

	library := game.NewClipLibrary()
	library.Set(clips)

	session := shootout.NewSession(params,
		shootout.WithRand(rand.New(rand.NewSource(seed))),
		shootout.WithAnimators(
			systems.NewEntityAnimator(em, rig.Striker, library),
			systems.NewEntityAnimator(em, rig.Keeper, library),
		),
	)
	session.AddListener(systems.NewScoreboardSystem(em, rig.HUD, session.Ledger()))

	return &termGame{
		title:      variant.Name,
		em:         em,
		rig:        rig,
		session:    session,
		clipSystem: systems.NewClipSystem(em),
		syncSystem: systems.NewSessionSyncSystem(em, session, rig),
		settings:   game.NewSettingsManager(),
	}
}

// handle 处理一个动作，返回是否继续运行
func (g *termGame) handle(a action) bool {
	switch a {
	case actQuit:
		return false
	case actMute:
		if g.audio != nil {
			g.audio.toggleMute()
		} else {
			g.settings.ToggleSound()
		}
	default:
		if in := a.input(); in != shootout.InputNone {
			g.session.HandleInput(in)
		}
	}
	return true
}

// tick 推进一帧，now 为游戏开始以来的时间
func (g *termGame) tick(now time.Duration, deltaTime float64) {
	g.session.Update(now)
	g.clipSystem.Update(deltaTime)
	g.syncSystem.Update(deltaTime)
}

// frame 当前帧的绘制数据
func (g *termGame) frame() frame {
	return frame{
		title:   g.title,
		params:  g.session.Params(),
		state:   g.session.State(),
		muted:   !g.settings.GetSettings().SoundEnabled,
		em:      g.em,
		rig:     g.rig,
		attempt: g.session.Attempts(),
	}
}

func (g *termGame) draw() {
	w, h := g.screen.Size()
	render(g.frame(), w, h).flush(g.screen)
	g.screen.Show()
}

// run 事件循环：输入在独立 goroutine 中读取，定时器驱动帧
func (g *termGame) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	g.start = time.Now()
	g.lastTick = g.start
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handle(actionForKey(ev)) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case t := <-ticker.C:
			// 每帧只读取一次时钟
			dt := t.Sub(g.lastTick).Seconds()
			g.lastTick = t
			g.tick(t.Sub(g.start), dt)
			g.draw()
		}
	}
}

func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	embedded.Init(data.FS)

	variants, err := config.LoadVariants()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load variants: %v\n", err)
		os.Exit(1)
	}
	variant, ok := config.FindVariant(variants, *variantFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown variant %q\n", *variantFlag)
		os.Exit(1)
	}
	clips, err := config.LoadClipConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load clips: %v\n", err)
		os.Exit(1)
	}
	if *fpsFlag <= 0 {
		*fpsFlag = config.TicksPerSecond
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := newTermGame(variant, clips, seed)

	bank, err := game.NewSoundBank(seed)
	if err != nil {
		log.Printf("[Audio] Sound synthesis failed: %v", err)
	} else {
		g.audio = newSpeakerAudio(bank, g.settings)
		defer g.audio.close()
		g.session.AddListener(g.audio)
	}
	if *muteFlag {
		g.settings.SetSoundEnabled(false)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()
	g.screen = screen

	log.Printf("[Term] Variant %s, seed %d, %d fps", variant.ID, seed, *fpsFlag)
	g.run(*fpsFlag)
}
