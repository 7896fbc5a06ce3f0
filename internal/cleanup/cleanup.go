// Package cleanup runs registered functions before the program exits.
package cleanup

import "sync"

var (
	registered []func()
	mu         sync.Mutex
)

// Register adds fn to the functions run by [Cleanup].
func Register(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, fn)
}

// Cleanup runs the registered functions in the reverse order they were
// registered, then forgets them.
func Cleanup() {
	mu.Lock()
	fns := registered
	registered = nil
	mu.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
