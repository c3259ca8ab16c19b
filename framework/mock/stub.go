package mock

// Swap replaces the value in *slot with a substitute for the duration of
// body, then restores the original on every exit path, panics included.
// After Swap returns or panics, *slot is identical to what it was before.
//
// Stubbing works by capability substitution: the code under test reaches its
// collaborator through a function variable or injected value, and Swap
// temporarily points that slot somewhere else. No live method table is ever
// mutated.
func Swap[T any](slot *T, substitute T, body func()) {
	saved := *slot
	*slot = substitute
	defer func() { *slot = saved }()
	body()
}

// Stub points a function slot at a constant: every call inside body returns
// value.
func Stub[R any](slot *func() R, value R, body func()) {
	Swap(slot, func() R { return value }, body)
}

// StubFn is the callable-valued variant of Stub, for substituted results that
// must be computed per call.
func StubFn[R any](slot *func() R, fn func() R, body func()) {
	Swap(slot, fn, body)
}
