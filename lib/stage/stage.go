// Package stage models the result of an optional enrichment step,
// which may be skipped, may succeed or may fail without stopping the
// file it is enriching.
package stage

// State of an enrichment step
type State byte

// States
const (
	Skipped State = iota // not attempted, e.g. capability not configured
	OK                   // produced a value
	Failed               // attempted and failed
)

var stateToString = []string{
	Skipped: "skipped",
	OK:      "ok",
	Failed:  "failed",
}

func (s State) String() string {
	if int(s) >= len(stateToString) {
		return "unknown"
	}
	return stateToString[s]
}

// Result is the tagged outcome of a step producing a T
type Result[T any] struct {
	State State
	Value T
	Err   error // set when State is Failed
}

// Skip returns a Skipped result
func Skip[T any]() Result[T] {
	return Result[T]{State: Skipped}
}

// Ok returns an OK result holding v
func Ok[T any](v T) Result[T] {
	return Result[T]{State: OK, Value: v}
}

// Fail returns a Failed result holding err
func Fail[T any](err error) Result[T] {
	return Result[T]{State: Failed, Err: err}
}

// From returns Ok(v) if err is nil or Fail(err) otherwise
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// ValueOr returns the value if the step succeeded or def otherwise
func (r Result[T]) ValueOr(def T) T {
	if r.State == OK {
		return r.Value
	}
	return def
}
