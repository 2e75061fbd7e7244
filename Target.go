package rroute

import "fmt"

// Params maps parameter names to values gathered from the path, query and fragment.
type Params map[string]string

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	return p[key]
}

// HandlerFunc handles a dispatched route and reports success.
type HandlerFunc func(params Params) bool

// TargetKind tells which variant a Target holds.
type TargetKind int

const (
	// KindInvalid marks a Target with no variant set.
	KindInvalid TargetKind = iota
	// KindClass marks a Target naming a constructible type.
	KindClass
	// KindHandler marks a Target holding a HandlerFunc.
	KindHandler
)

func (k TargetKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindHandler:
		return "handler"
	default:
		return "invalid"
	}
}

// Target is what a pattern resolves to: either a class identifier, resolved
// by the host application through a Constructor, or a handler.
// Build one with ClassTarget or HandlerTarget.
type Target struct {
	classID string
	handler HandlerFunc
}

// ClassTarget returns a Target naming the constructible type classID.
func ClassTarget(classID string) Target {
	return Target{classID: classID}
}

// HandlerTarget returns a Target that invokes handler on dispatch.
func HandlerTarget(handler HandlerFunc) Target {
	return Target{handler: handler}
}

// Kind returns the variant held by t.
// A Target with both or neither variant set is KindInvalid.
func (t Target) Kind() TargetKind {
	hasClass, hasHandler := t.classID != "", t.handler != nil
	switch {
	case hasClass && !hasHandler:
		return KindClass
	case hasHandler && !hasClass:
		return KindHandler
	default:
		return KindInvalid
	}
}

// ClassID returns the class identifier, or "" for handler targets.
func (t Target) ClassID() string {
	return t.classID
}

// Handler returns the handler, or nil for class targets.
func (t Target) Handler() HandlerFunc {
	return t.handler
}

// Validate returns ErrInvalidRouteEntry unless exactly one variant is set.
func (t Target) Validate() error {
	if t.Kind() == KindInvalid {
		return ErrInvalidRouteEntry
	}
	return nil
}

func (t Target) String() string {
	switch t.Kind() {
	case KindClass:
		return "class " + t.classID
	case KindHandler:
		return fmt.Sprintf("handler %p", t.handler)
	default:
		return "invalid target"
	}
}

// Constructor builds an instance for a class target. It is implemented by
// the host application; the router never constructs anything itself.
type Constructor interface {
	Construct(classID string, params Params) (any, error)
}

// ConstructorFunc adapts a function to the Constructor interface.
type ConstructorFunc func(classID string, params Params) (any, error)

// Construct calls f.
func (f ConstructorFunc) Construct(classID string, params Params) (any, error) {
	return f(classID, params)
}
