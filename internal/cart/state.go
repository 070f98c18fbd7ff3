package cart

// State is the load lifecycle of a cart screen session. Per-item mutation
// sub-states are not tracked here: a mutation in flight is simply an
// outstanding call, and its failed outcome is the error returned to the
// caller. Neither moves the state; the next successful action carries on
// from Loaded.
type State string

const (
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateLoading         State = "LOADING"
	StateLoaded          State = "LOADED"
	StateLoadFailed      State = "LOAD_FAILED"
)

func (s State) String() string {
	return string(s)
}
