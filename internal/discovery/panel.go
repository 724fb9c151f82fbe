package discovery

import (
	"sync"
	"time"
)

// DefaultDismissDelay is how long a blurred panel stays open so that a
// click on a suggestion, which arrives after the blur, still registers.
const DefaultDismissDelay = 200 * time.Millisecond

// SourceFunc returns the catalog view to match against. It is called on
// every input so a reloaded catalog is picked up.
type SourceFunc func() Source

// Panel is the suggestion dropdown of one search box. It is safe for
// concurrent use; the deferred dismissal runs on a timer goroutine.
type Panel struct {
	matcher Matcher
	source  SourceFunc
	delay   time.Duration

	mu        sync.Mutex
	focused   bool
	open      bool
	query     string
	current   Suggestions
	dismiss   *time.Timer
	gen       uint64
	onDismiss func()
}

func NewPanel(source SourceFunc, matcher Matcher, delay time.Duration) *Panel {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}
	return &Panel{
		matcher: matcher,
		source:  source,
		delay:   delay,
		current: emptySuggestions(),
	}
}

// OnDismiss registers fn to run, outside the lock, when a deferred
// dismissal closes the panel.
func (p *Panel) OnDismiss(fn func()) {
	p.mu.Lock()
	p.onDismiss = fn
	p.mu.Unlock()
}

// Focus shows the suggestions for the current query and cancels a pending
// dismissal.
func (p *Panel) Focus() Suggestions {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelDismissLocked()
	p.focused = true
	p.current = p.matcher.Suggest(p.source(), p.query)
	p.open = !p.current.Empty()
	return p.current
}

// Input recomputes the suggestions for query. Only the final query matters:
// the result for it is identical however many keystrokes came before.
func (p *Panel) Input(query string) Suggestions {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.query = query
	p.current = p.matcher.Suggest(p.source(), query)
	p.open = p.focused && !p.current.Empty()
	return p.current
}

// Blur schedules the dismissal after the panel's delay.
func (p *Panel) Blur() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.focused = false
	p.cancelDismissLocked()
	gen := p.gen
	p.dismiss = time.AfterFunc(p.delay, func() { p.expire(gen) })
}

func (p *Panel) expire(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.closeLocked()
	fn := p.onDismiss
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Select returns the target at index and closes the panel. It fails once
// the panel has been dismissed or when index is out of range.
func (p *Panel) Select(index int) (Target, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return Target{}, false
	}
	targets := p.current.Targets()
	if index < 0 || index >= len(targets) {
		return Target{}, false
	}
	p.closeLocked()
	return targets[index], true
}

// Close dismisses the panel immediately.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *Panel) Open() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Panel) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Panel) Suggestions() Suggestions {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Panel) closeLocked() {
	p.cancelDismissLocked()
	p.open = false
	p.current = emptySuggestions()
}

// cancelDismissLocked stops a pending dismissal. Bumping gen also voids a
// timer that already fired and is waiting for the lock.
func (p *Panel) cancelDismissLocked() {
	if p.dismiss != nil {
		p.dismiss.Stop()
		p.dismiss = nil
	}
	p.gen++
}
