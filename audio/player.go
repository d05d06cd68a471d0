// Package audio plays short tones for simulation events without ever blocking the game loop.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"entropia/model"
)

const (
	sampleRate = beep.SampleRate(48000)

	// queueSize bounds pending events; Emit drops events once it is full.
	queueSize = 64
)

// Player is a model.EventSink that turns events into tones on the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	events    chan model.Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	dropped   atomic.Uint64
}

// NewPlayer starts the event consumer. Until Initialize succeeds events are consumed silently.
func NewPlayer() *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		events: make(chan model.Event, queueSize),
		done:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Initialize opens the speaker. It fails on machines without an audio device, in which case
// the player keeps working as a silent sink.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Emit queues e for playback, dropping it if the queue is full.
func (p *Player) Emit(e model.Event) {
	select {
	case p.events <- e:
	default:
		p.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// Close stops the consumer and releases the speaker. It is safe to call more than once.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.initialized {
			speaker.Clear()
			speaker.Close()
			p.initialized = false
		}
	})
}

func (p *Player) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case e := <-p.events:
			p.play(e)
		}
	}
}

func (p *Player) play(e model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	t := toneFor(e.Kind)
	streamer := beep.Take(sampleRate.N(t.duration), newToneGenerator(sampleRate, t.freq, t.gain))
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}
