package queue

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"github.com/zeromicro/go-zero/core/syncx"
)

// Lock kinds accepted by NewLocker.
const (
	LockMutex    = "mutex"    // sync.Mutex
	LockSpin     = "spin"     // go-zero syncx.SpinLock
	LockAdaptive = "adaptive" // AdaptiveLock
)

// LockKinds lists the accepted lock kinds.
func LockKinds() []string {
	return []string{LockMutex, LockSpin, LockAdaptive}
}

// NewLocker returns a fresh, unlocked lock of the given kind.
// An empty kind selects LockMutex.
func NewLocker(kind string) (sync.Locker, error) {
	switch kind {
	case "", LockMutex:
		return new(sync.Mutex), nil
	case LockSpin:
		return new(syncx.SpinLock), nil
	case LockAdaptive:
		return new(AdaptiveLock), nil
	default:
		return nil, fmt.Errorf("queue: unknown lock kind %q", kind)
	}
}

// AdaptiveLock is a test-and-set lock that backs off with spin.Wait
// while contended.
//
// The zero value is unlocked. It is not reentrant.
type AdaptiveLock struct {
	state atomix.Uint64
}

// Lock acquires the lock, spinning until it is available.
func (l *AdaptiveLock) Lock() {
	sw := spin.Wait{}
	for !l.state.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

// Unlock releases the lock.
func (l *AdaptiveLock) Unlock() {
	if !l.state.CompareAndSwapAcqRel(1, 0) {
		panic("queue: unlock of unlocked AdaptiveLock")
	}
}
