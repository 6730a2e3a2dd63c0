package datagrid

import "sync"

// Text selection is a process-wide toggle on the host (the document in a
// browser, the cursor mode of a window, mouse tracking of a terminal). While
// any gesture is active it stays suppressed; the guard counts holders so the
// host hook only sees the 0->1 and 1->0 transitions.
var selection = struct {
	mu      sync.Mutex
	holders int
	hook    func(suppressed bool)
}{}

// SetSelectionHook installs the host callback invoked when text selection
// becomes suppressed or is restored. Pass nil to remove it.
func SetSelectionHook(hook func(suppressed bool)) {
	selection.mu.Lock()
	selection.hook = hook
	selection.mu.Unlock()
}

// SelectionSuppressed reports whether any holder currently suppresses selection.
func SelectionSuppressed() bool {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	return selection.holders > 0
}

// AcquireSelectionSuppression suppresses text selection until the returned
// release func is called. Calling release more than once has no further effect.
func AcquireSelectionSuppression() (release func()) {
	selection.mu.Lock()
	selection.holders++
	hook := selection.hook
	first := selection.holders == 1
	selection.mu.Unlock()

	if first && hook != nil {
		hook(true)
	}

	var once sync.Once
	return func() {
		once.Do(releaseSelection)
	}
}

func releaseSelection() {
	selection.mu.Lock()
	if selection.holders == 0 {
		selection.mu.Unlock()
		return
	}
	selection.holders--
	hook := selection.hook
	last := selection.holders == 0
	selection.mu.Unlock()

	if last && hook != nil {
		hook(false)
	}
}
