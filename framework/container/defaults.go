package container

import "sync"

// The process default selector is a freeze-on-first-read slot: the first
// DefaultSelector call materializes the value (constructing a
// RankingSelector over the default catalog if none was set) and freezes it
// permanently. Sets after the freeze are silently ignored, so every
// container created after the first read shares one consistent default
// strategy, while process startup code may still customize it beforehand.
//
// One mutex covers both the freezing read and the set, so a set racing the
// first read can never be accepted once the read has begun materializing.
var defaultSel struct {
	mu     sync.Mutex
	value  Selector
	frozen bool
}

// DefaultSelector returns the process default selector, materializing and
// freezing it on first call.
func DefaultSelector() Selector {
	defaultSel.mu.Lock()
	defer defaultSel.mu.Unlock()
	if !defaultSel.frozen {
		if defaultSel.value == nil {
			defaultSel.value = NewSelector(nil)
		}
		defaultSel.frozen = true
	}
	return defaultSel.value
}

// SetDefaultSelector replaces the process default selector. It is a no-op
// once DefaultSelector has been called, and ignores nil.
func SetDefaultSelector(s Selector) {
	if s == nil {
		return
	}
	defaultSel.mu.Lock()
	defer defaultSel.mu.Unlock()
	if defaultSel.frozen {
		return
	}
	defaultSel.value = s
}

// ResetDefaultSelector unfreezes and clears the slot. Intended for tests.
func ResetDefaultSelector() {
	defaultSel.mu.Lock()
	defer defaultSel.mu.Unlock()
	defaultSel.value = nil
	defaultSel.frozen = false
}
