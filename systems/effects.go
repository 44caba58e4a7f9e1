package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// UpdateEffects advances the lake waves and, while the bench shows them,
// the fireworks.
func UpdateEffects(s *session.Session) {
	fx := s.Effects()
	updateWaves(components.Waves.Get(fx))

	bench := netcomponents.NetBenchState.Get(s.Fixtures())
	fw := components.Fireworks.Get(fx)
	if !bench.ShowFireworks {
		*fw = components.FireworksData{Frame: -1, Size: 1}
		return
	}
	updateFireworks(s, fw)
}

func updateWaves(w *components.WavesData) {
	w.Cycle++
	if w.Cycle < cfg.Waves.TicksPerFrame {
		return
	}
	w.Cycle = 0
	w.Frame = (w.Frame + 1) % cfg.Waves.Frames
}

func updateFireworks(s *session.Session, fw *components.FireworksData) {
	fc := cfg.Fireworks

	if fw.Frame < 0 {
		if fw.NextWait > 0 {
			fw.NextWait--
			return
		}
		fw.Frame = 0
		fw.Cycle = 0
		fw.Size = fc.MinSize
		fw.Tween = gween.New(fc.MinSize, fc.MaxSize, fc.GrowSeconds, ease.OutCubic)
		return
	}

	if fw.Tween != nil {
		fw.Size, _ = fw.Tween.Update(float32(cfg.Loop.Interval.Seconds()))
	}

	fw.Cycle++
	if fw.Cycle < fc.TicksPerFrame {
		return
	}
	fw.Cycle = 0
	fw.Frame++
	if fw.Frame >= fc.Frames {
		fw.Frame = -1
		fw.Tween = nil
		fw.NextWait = fc.MinWait + s.Rand.Intn(fc.MaxWait-fc.MinWait+1)
	}
}
