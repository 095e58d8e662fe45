package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 音频采样率，与 audio.Context 一致
const SampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	SoundKick    SoundID = "kick"
	SoundWhistle SoundID = "whistle"
	SoundGoal    SoundID = "goal"
	SoundSave    SoundID = "save"
	SoundMiss    SoundID = "miss"
	SoundBounce  SoundID = "bounce"
)

// AllSounds 所有音效，按预合成顺序
var AllSounds = []SoundID{SoundKick, SoundWhistle, SoundGoal, SoundSave, SoundMiss, SoundBounce}

// waveType 振荡器波形
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator 线性扫频振荡器
// freq 从 from 线性变化到 to，持续 samples 个采样
type oscillator struct {
	from, to float64
	phase    float64
	samples  int
	position int
	wave     waveType
	rng      *rand.Rand
}

func newOscillator(from, to float64, d time.Duration, wave waveType, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		from:    from,
		to:      to,
		samples: beep.SampleRate(SampleRate).N(d),
		wave:    wave,
		rng:     rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.samples {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.samples)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / SampleRate
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay 指数衰减包络，attack 内线性淡入
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	tau      float64
}

func newDecay(s beep.Streamer, attack, halfLife time.Duration) beep.Streamer {
	sr := beep.SampleRate(SampleRate)
	return &decay{
		streamer: s,
		attack:   sr.N(attack),
		tau:      float64(sr.N(halfLife)) / math.Ln2,
	}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(e.position) / e.tau)
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// gain 线性音量
func gain(s beep.Streamer, g float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: g - 1}
}

// synthesize 构造某个音效的流
func synthesize(id SoundID, rng *rand.Rand) (beep.Streamer, error) {
	switch id {
	case SoundKick:
		// 低频闷响 + 短促噪声
		body := newDecay(newOscillator(120, 45, 180*time.Millisecond, waveSine, rng), 2*time.Millisecond, 40*time.Millisecond)
		click := newDecay(newOscillator(0, 0, 40*time.Millisecond, waveNoise, rng), 0, 8*time.Millisecond)
		return beep.Mix(gain(body, 0.9), gain(click, 0.3)), nil

	case SoundWhistle:
		// 两声短哨
		blast := func(d time.Duration) beep.Streamer {
			return newDecay(newOscillator(2900, 2750, d, waveSine, rng), 10*time.Millisecond, 400*time.Millisecond)
		}
		gap := beep.Silence(beep.SampleRate(SampleRate).N(60 * time.Millisecond))
		return gain(beep.Seq(blast(120*time.Millisecond), gap, blast(260*time.Millisecond)), 0.35), nil

	case SoundGoal:
		// 观众欢呼：长噪声 + 上行和弦
		crowd := newDecay(newOscillator(0, 0, 1400*time.Millisecond, waveNoise, rng), 120*time.Millisecond, 600*time.Millisecond)
		horn := newDecay(newOscillator(392, 523, 600*time.Millisecond, waveSaw, rng), 20*time.Millisecond, 300*time.Millisecond)
		return beep.Mix(gain(crowd, 0.35), gain(horn, 0.25)), nil

	case SoundSave:
		// 手套击球
		thud := newDecay(newOscillator(220, 90, 220*time.Millisecond, waveSquare, rng), 1*time.Millisecond, 50*time.Millisecond)
		slap := newDecay(newOscillator(0, 0, 90*time.Millisecond, waveNoise, rng), 0, 15*time.Millisecond)
		return beep.Mix(gain(thud, 0.35), gain(slap, 0.5)), nil

	case SoundMiss:
		// 下行叹息
		sigh := newDecay(newOscillator(330, 160, 700*time.Millisecond, waveSaw, rng), 30*time.Millisecond, 350*time.Millisecond)
		return gain(sigh, 0.3), nil

	case SoundBounce:
		// 门柱/守门员反弹
		ping := newDecay(newOscillator(880, 660, 160*time.Millisecond, waveSine, rng), 1*time.Millisecond, 35*time.Millisecond)
		return gain(ping, 0.5), nil

	default:
		return nil, fmt.Errorf("unknown sound %q", id)
	}
}

// renderPCM 把流渲染为 16 位小端立体声 PCM
func renderPCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// bankFormat 音效缓冲区格式
var bankFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// SoundBank 预合成的音效
// 同一份采样既提供给 ebiten（PCM 字节），也提供给 beep speaker（Streamer）
type SoundBank struct {
	buffers map[SoundID]*beep.Buffer
	pcm     map[SoundID][]byte
}

// NewSoundBank 合成所有音效
// seed 控制噪声音色，相同 seed 得到相同的 PCM
func NewSoundBank(seed int64) (*SoundBank, error) {
	rng := rand.New(rand.NewSource(seed))
	bank := &SoundBank{
		buffers: make(map[SoundID]*beep.Buffer, len(AllSounds)),
		pcm:     make(map[SoundID][]byte, len(AllSounds)),
	}
	for _, id := range AllSounds {
		s, err := synthesize(id, rng)
		if err != nil {
			return nil, err
		}

		buffer := beep.NewBuffer(bankFormat)
		buffer.Append(s)
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("failed to synthesize sound %s: %w", id, err)
		}

		data, err := renderPCM(buffer.Streamer(0, buffer.Len()))
		if err != nil {
			return nil, fmt.Errorf("failed to render sound %s: %w", id, err)
		}
		bank.buffers[id] = buffer
		bank.pcm[id] = data
	}
	return bank, nil
}

// PCM 返回音效数据，不存在时返回 nil
func (b *SoundBank) PCM(id SoundID) []byte {
	return b.pcm[id]
}

// Streamer 返回从头播放音效的流，不存在时返回 nil
func (b *SoundBank) Streamer(id SoundID) beep.StreamSeeker {
	buffer, ok := b.buffers[id]
	if !ok {
		return nil
	}
	return buffer.Streamer(0, buffer.Len())
}

// Duration 返回音效时长
func (b *SoundBank) Duration(id SoundID) time.Duration {
	buffer, ok := b.buffers[id]
	if !ok {
		return 0
	}
	return bankFormat.SampleRate.D(buffer.Len())
}
