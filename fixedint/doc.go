// Package fixedint implements fixed-width two's complement integers of any
// bit width chosen at runtime.
//
// An Int is an immutable bit vector. Every arithmetic operation returns a new
// Int together with an overflow flag, computed for either the signed or the
// unsigned interpretation of the operands. Overflow is not an error: the
// wrapped result is always returned alongside it.
//
// Operations on Ints of different widths, out-of-range bit indexes and
// narrowing extensions are programming errors and panic.
package fixedint
