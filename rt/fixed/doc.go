// Package fixed is the Q17.15 fixed-point math kernel used by the fxray tracer.
//
// Everything here is integer-only so it runs on boards without an FPU. Values are
// plain value types: every operation returns a new Scalar, vector or matrix and
// nothing is mutated in place.
//
// Failure policy:
//
//	Add/Sub/Mul/Div  saturate to Max or Min instead of wrapping.
//	Div(a, 0)        returns Max regardless of the sign of a.
//	Sqrt(a < 0)      returns SqrtUndefined (raw -1).
//
// No function returns an error or panics. A degraded value is preferred over an
// aborted frame.
package fixed
