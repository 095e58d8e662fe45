// check_variants 校验磁盘上的变体配置，并对每个变体做一次无界面试射
//
// 用法:
//
//	go run ./cmd/check_variants                      # 检查 data/variants/*.yaml
//	go run ./cmd/check_variants my_variant.yaml ...  # 检查指定文件
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/shootout"
)

// 试射的帧间隔和最大帧数
const (
	probeFrame     = 16 * time.Millisecond
	probeMaxFrames = 2000
)

func main() {
	log.SetOutput(io.Discard)

	paths := os.Args[1:]
	if len(paths) == 0 {
		matches, err := filepath.Glob("data/variants/*.yaml")
		if err != nil || len(matches) == 0 {
			fmt.Printf("❌ 没有找到变体配置: %v\n", err)
			os.Exit(1)
		}
		paths = matches
	}

	failed := 0
	for _, path := range paths {
		if !checkVariant(path) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("\n❌ %d/%d 个变体未通过检查\n", failed, len(paths))
		os.Exit(1)
	}
	fmt.Printf("\n✅ 全部 %d 个变体通过检查\n", len(paths))
}

// checkVariant 校验一个文件并试射
func checkVariant(path string) bool {
	v, err := config.LoadVariantConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		return false
	}
	fmt.Printf("✅ %s: %s (%s, policy=%s)\n", path, v.ID, v.Name, v.Rules.Policy)

	ok := true
	for _, dive := range shootout.AllDives {
		result, frames := probe(v.ToParams(), dive)
		if frames >= probeMaxFrames {
			fmt.Printf("   ❌ dive=%-6s 试射在 %d 帧内没有结束\n", dive, probeMaxFrames)
			ok = false
			continue
		}
		fmt.Printf("   • dive=%-6s %-8s cross=(%.2f, %.2f) frames=%d\n", dive, result.Label(), result.CrossX, result.CrossY, frames)
		if result.Short {
			fmt.Printf("   ⚠️  正中射门没有到达门线，检查 launch/physics 参数\n")
			ok = false
		}
	}
	return ok
}

// probe 正中射门一次，返回结果和用掉的帧数
func probe(p shootout.Params, dive shootout.Dive) (shootout.Outcome, int) {
	session := shootout.NewSession(p, shootout.WithDiveChooser(shootout.FixedDive(dive)))
	session.HandleInput(shootout.InputTrigger)

	var now time.Duration
	for frame := 1; frame <= probeMaxFrames; frame++ {
		now += probeFrame
		session.Update(now)
		if o, ok := session.LastOutcome(); ok {
			return o, frame
		}
	}
	return shootout.Outcome{}, probeMaxFrames
}
