package cirsoc

import "fmt"

// GeometryError reports structurally invalid dimensions.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

// NewGeometryError builds a GeometryError with a formatted message.
func NewGeometryError(format string, args ...any) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// GuidelineError reports that the regulation provides no rule for the given
// geometry. It carries the offending value for diagnostics.
type GuidelineError struct {
	Msg   string
	Value float64
}

func (e *GuidelineError) Error() string {
	return fmt.Sprintf("%s (value: %.2f)", e.Msg, e.Value)
}

// MissingComponentsError reports that cladding pressures were requested
// without a component area mapping.
type MissingComponentsError struct {
	Surface string // "walls" or "roof"
}

func (e *MissingComponentsError) Error() string {
	return fmt.Sprintf("no %s components to determine pressure coefficients", e.Surface)
}

// ComponentAreaError reports a component with a non-positive or non-finite
// tributary area.
type ComponentAreaError struct {
	Name string
	Area float64
}

func (e *ComponentAreaError) Error() string {
	return fmt.Sprintf("component %q has invalid tributary area %.2f m²", e.Name, e.Area)
}

// MethodNotSupportedError reports an analysis method the engine does not
// implement.
type MethodNotSupportedError struct {
	Method Method
}

func (e *MethodNotSupportedError) Error() string {
	return fmt.Sprintf("the %q method is not supported, use the directional method", e.Method)
}
