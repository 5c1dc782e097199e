// Package main provides a headless verification tool for the carousel state machine.
//
// It replays a scripted gesture sequence against the real gesture normalizer,
// slide recycler and tween scheduler (no window, no rendering) and prints the
// carousel state after every step.
//
// Usage:
//
//	go run cmd/verify_carousel/main.go [flags]
//
// Flags:
//
//	--config <path>   Carousel config file (default: data/carousel.yaml)
//	--script <steps>  Semicolon-separated steps (default: a wheel/touch tour)
//	--tick <seconds>  Simulation step for wait/settle (default: 1/60)
//	--verbose         Enable verbose logging
//
// Steps:
//
//	wheel:<deltaY>               One wheel event (positive = scroll down = advance)
//	touch:<startY>,<endY>        Swipe at x=0
//	touch:<x1>,<y1>,<x2>,<y2>    Swipe with explicit coordinates
//	advance / retreat            Request a transition directly
//	wait:<seconds>               Advance time
//	settle                       Advance time until the animation lock is released
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/systems"
)

const defaultScript = "wheel:30;wheel:30;wheel:30;wheel:30;settle;wait:1.2;" +
	"touch:400,300;settle;wait:1.2;touch:300,400;settle;retreat;advance;settle"

var (
	configFlag  = flag.String("config", config.DefaultCarouselConfigPath, "Carousel config file")
	scriptFlag  = flag.String("script", defaultScript, "Semicolon-separated gesture steps")
	tickFlag    = flag.Float64("tick", 1.0/60.0, "Simulation step in seconds")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// maxSettleSeconds settle 步骤的最长模拟时间
const maxSettleSeconds = 30.0

// Step 脚本中的一步
type Step struct {
	Kind string
	Args []float64
}

// String 返回步骤的脚本表示
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Kind
	}
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return s.Kind + ":" + strings.Join(parts, ",")
}

// ParseScript 解析脚本
func ParseScript(script string) ([]Step, error) {
	var steps []Step
	for _, raw := range strings.Split(script, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		kind, argText, _ := strings.Cut(raw, ":")
		step := Step{Kind: strings.ToLower(strings.TrimSpace(kind))}
		if argText != "" {
			for _, a := range strings.Split(argText, ",") {
				v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
				if err != nil {
					return nil, fmt.Errorf("step %q: invalid number %q: %w", raw, a, err)
				}
				step.Args = append(step.Args, v)
			}
		}

		want := map[string][]int{
			"wheel":   {1},
			"touch":   {2, 4},
			"wait":    {1},
			"advance": {0},
			"retreat": {0},
			"settle":  {0},
		}
		counts, ok := want[step.Kind]
		if !ok {
			return nil, fmt.Errorf("step %q: unknown kind %q", raw, step.Kind)
		}
		valid := false
		for _, c := range counts {
			if len(step.Args) == c {
				valid = true
			}
		}
		if !valid {
			return nil, fmt.Errorf("step %q: expected %v arguments, got %d", raw, counts, len(step.Args))
		}
		if step.Kind == "wait" && step.Args[0] < 0 {
			return nil, fmt.Errorf("step %q: wait must be >= 0", raw)
		}

		steps = append(steps, step)
	}
	return steps, nil
}

// Harness 无窗口的轮播模拟环境
type Harness struct {
	em       *ecs.EntityManager
	tweens   *systems.TweenSystem
	recycler *systems.SlideRecyclerSystem
	gesture  *systems.GestureSystem
	tick     float64
	elapsed  float64
}

// NewHarness 创建模拟环境并挂载初始幻灯片
func NewHarness(cfg *config.CarouselConfig, tick float64) *Harness {
	em := ecs.NewEntityManager()
	tweens := systems.NewTweenSystem()
	recycler := systems.NewSlideRecyclerSystem(em, tweens, cfg)
	recycler.Bootstrap()

	return &Harness{
		em:       em,
		tweens:   tweens,
		recycler: recycler,
		gesture:  systems.NewGestureSystem(recycler, cfg.Gesture),
		tick:     tick,
	}
}

// Run 执行一步，返回该步的结果描述
func (h *Harness) Run(step Step) string {
	switch step.Kind {
	case "wheel":
		return fired(h.gesture.HandleWheel(step.Args[0]))
	case "touch":
		x1, y1, x2, y2 := 0.0, step.Args[0], 0.0, step.Args[1]
		if len(step.Args) == 4 {
			x1, y1, x2, y2 = step.Args[0], step.Args[1], step.Args[2], step.Args[3]
		}
		h.gesture.HandleTouchStart(x1, y1)
		return fired(h.gesture.HandleTouchEnd(x2, y2))
	case "advance", "retreat":
		dir := systems.DirectionAdvance
		if step.Kind == "retreat" {
			dir = systems.DirectionRetreat
		}
		if h.recycler.RequestTransition(dir) == nil {
			return "dropped (locked)"
		}
		return "committed"
	case "wait":
		h.advance(step.Args[0])
		return ""
	case "settle":
		start := h.elapsed
		for h.recycler.IsAnimating() && h.elapsed-start < maxSettleSeconds {
			h.advance(h.tick)
		}
		if h.recycler.IsAnimating() {
			return "timeout"
		}
		return fmt.Sprintf("settled after %.2fs", h.elapsed-start)
	}
	return ""
}

// advance 按 tick 推进时间，顺序与 CarouselScene.Update 一致
func (h *Harness) advance(seconds float64) {
	for remaining := seconds; remaining > 1e-9; remaining -= h.tick {
		dt := h.tick
		if remaining < dt {
			dt = remaining
		}
		h.gesture.Update(dt)
		h.tweens.Update(dt)
		h.em.RemoveMarkedEntities()
		h.elapsed += dt
	}
}

// State 返回当前状态摘要
func (h *Harness) State() string {
	var titles []string
	for offset := 0; offset < h.recycler.WindowSize(); offset++ {
		if idx, ok := h.recycler.DescriptorAt(offset); ok {
			titles = append(titles, h.recycler.Descriptor(idx).Title)
		}
	}
	gs := h.gesture.State()
	return fmt.Sprintf("t=%.2fs front=%d mounted=%d animating=%v wheelCD=%.2f touchCD=%.2f acc=%.0f [%s]",
		h.elapsed, h.recycler.FrontIndex(), h.recycler.MountedCount(), h.recycler.IsAnimating(),
		gs.WheelCooldown, gs.TouchCooldown, gs.WheelAccumulator, strings.Join(titles, " | "))
}

func fired(ok bool) string {
	if ok {
		return "intent emitted"
	}
	return "no intent"
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if *tickFlag <= 0 {
		fmt.Fprintln(os.Stderr, "--tick must be > 0")
		os.Exit(2)
	}

	cfg, err := config.LoadCarouselConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	steps, err := ParseScript(*scriptFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid script: %v\n", err)
		os.Exit(2)
	}

	h := NewHarness(cfg, *tickFlag)
	fmt.Printf("%-24s %s\n", "bootstrap", h.State())
	for _, step := range steps {
		result := h.Run(step)
		label := step.String()
		if result != "" {
			label += " → " + result
		}
		fmt.Printf("%-24s %s\n", label, h.State())
	}
}
