package ir

import (
	"vexc/report"
	"vexc/types"
)

// Value represents a typed value in the intermediate representation.
type Value interface {
	// Type returns the result type of the value.
	Type() types.Type

	// Span returns the source position the value was imported from.
	Span() *report.TextSpan
}

// The base struct for all values.
type ValueBase struct {
	span *report.TextSpan
	typ  types.Type
}

// NewValueBase creates a new value base with the span span and type typ.
func NewValueBase(span *report.TextSpan, typ types.Type) ValueBase {
	return ValueBase{span: span, typ: typ}
}

func (vb *ValueBase) Type() types.Type {
	return vb.typ
}

func (vb *ValueBase) Span() *report.TextSpan {
	return vb.span
}

// -----------------------------------------------------------------------------

// Identifier represents a reference to a symbol.
type Identifier struct {
	ValueBase

	// The name of the identifier.
	Name string
}

// ConstInt represents an integer constant.
type ConstInt struct {
	ValueBase

	// The integer value of the integer constant.
	IntValue int64
}

// ConstReal represents a real (floating-point) constant.
type ConstReal struct {
	ValueBase

	// The floating-point value of the real constant.
	FloatValue float64
}
