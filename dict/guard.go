package dict

// Guard certifies the execution phase for the audit pair. Resetting or
// checking access flags touches every entry without synchronization, so both
// operations demand either a serial phase of the surrounding kernel or a
// dictionary that is private to one worker.
//
// The surrounding execution context supplies the Guard; the dictionary never
// consults global state.
type Guard interface {
	// AssertSingleThreaded panics if worker threads are currently active.
	// A violation is a programming error in the caller's phase discipline,
	// not a recoverable condition.
	AssertSingleThreaded()
}

// ThreadLocal is the Guard for dictionaries owned by a single worker. It
// bypasses the single-thread assertion by design: a worker-private dictionary
// may be audited inside a parallel region.
var ThreadLocal Guard = threadLocalGuard{}

type threadLocalGuard struct{}

func (threadLocalGuard) AssertSingleThreaded() {}
