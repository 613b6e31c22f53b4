package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeUint denotes unsigned integer parameters (moduli, seeds).
	ParamTypeUint ParamType = "uint"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean, display-only parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by a view for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// UintParam builds a display parameter for an unsigned integer value.
func UintParam(key, label string, value uint64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeUint, Value: strconv.FormatUint(value, 10)}
}

// FloatParam builds a display parameter for a floating-point value.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', 6, 64)}
}

// BoolParam builds a display parameter for a boolean value.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current values a view exposes to the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterControl describes an adjustable parameter that should be exposed
// on the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// SnapshotProvider exposes the current parameter values for display.
type SnapshotProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// UintParameterSetter allows HUD interactions to update unsigned integer
// parameters.
type UintParameterSetter interface {
	SetUintParameter(key string, value uint64) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
