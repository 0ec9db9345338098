package skiplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// These mirror the four retry-decision points the original C
// implementation instruments under __SL_DEBUG: lock-acquisition failure
// and post-lock neighborhood-changed detection, for both insert and
// erase. Tests can set them to inject timing windows into the CAS retry
// loops without touching production logic; production code never sets
// them. Node pointers are passed as any since these vars are not generic
// over the list's element type.
var (
	insertLockFailHook func(layer int, pred any)
	insertStaleHook    func(layer int, pred, next any)
	eraseLockFailHook  func(layer int, pred any)
	eraseStaleHook     func(layer int, pred, next any)
)
