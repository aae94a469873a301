// Package result holds a string-carrying tagged union.
//
// A StringResult is exactly one of OK or ErrorReason. The interface is
// sealed, so a type switch over both variants is exhaustive.
package result

type StringResult interface {
	isStringResult()
}

type OK string

type ErrorReason string

func (OK) isStringResult()          {}
func (ErrorReason) isStringResult() {}

var (
	_ StringResult = OK("")
	_ StringResult = ErrorReason("")
)

// Match calls onOK or onErr with the payload of r.
func Match[T any](r StringResult, onOK func(string) T, onErr func(string) T) T {
	switch v := r.(type) {
	case OK:
		return onOK(string(v))
	case ErrorReason:
		return onErr(string(v))
	default:
		panic("result: nil StringResult")
	}
}

// Inner returns the payload of either variant.
func Inner(r StringResult) string {
	id := func(s string) string { return s }
	return Match(r, id, id)
}

func IsOK(r StringResult) bool {
	_, ok := r.(OK)
	return ok
}
