// Package anim drives the shared animation clock and fans frames out to
// viewers.
package anim

import (
	"fmt"
	"sync"
	"time"
)

// Frame is sent to every viewer once per tick.
type Frame struct {
	Tick    uint64
	Viewers int
}

// FrameChan is the per-viewer channel that receives frames.
type FrameChan chan Frame

// Loop is the central animation clock.
type Loop struct {
	tickCount uint64

	mu      sync.RWMutex
	viewers map[string]FrameChan

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewLoop creates a loop with no viewers.
func NewLoop() *Loop {
	return &Loop{
		viewers: make(map[string]FrameChan),
		stopCh:  make(chan struct{}),
	}
}

// AddViewer registers a viewer under name. If the name is already in use a
// suffix is added. Returns the effective viewer ID and its frame channel.
func (l *Loop) AddViewer(name string) (string, FrameChan) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := name
	for n := 1; ; n++ {
		if _, taken := l.viewers[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s_%d", name, n)
	}

	ch := make(FrameChan, 2)
	l.viewers[id] = ch
	return id, ch
}

// RemoveViewer unregisters a viewer and closes its channel.
func (l *Loop) RemoveViewer(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ch, ok := l.viewers[id]; ok {
		close(ch)
		delete(l.viewers, id)
	}
}

// Viewers returns the number of registered viewers.
func (l *Loop) Viewers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.viewers)
}

// Run ticks at FrameRate until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// Stop shuts down the loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Loop) tick() {
	l.tickCount++

	l.mu.RLock()
	defer l.mu.RUnlock()

	f := Frame{Tick: l.tickCount, Viewers: len(l.viewers)}
	for _, ch := range l.viewers {
		select {
		case ch <- f:
		default:
			// Drop frame for slow viewer
		}
	}
}
