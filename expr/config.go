package expr

import (
	"fmt"
)

const (
	MIN_BITS     = 3  // Narrowest supported data type.
	DEFAULT_BITS = 32 // Width of the default data type.
)

// DataType is the width and signedness every value of an evaluation has.
type DataType struct {
	Bits   int  // Width in bits.
	Signed bool // If set, values are two's complement signed.
}

// ConciseName is the short form of the data type, such as U32 or S8.
func (dt DataType) ConciseName() string {
	sign := 'U'
	if dt.Signed {
		sign = 'S'
	}
	return fmt.Sprintf("%c%d", sign, dt.Bits)
}

// Clamp raises the width to MIN_BITS if it is narrower.
func (dt DataType) Clamp() DataType {
	dt.Bits = max(dt.Bits, MIN_BITS)
	return dt
}

// Configuration of a parse and evaluation.
type Configuration struct {
	DataType DataType
}

// DefaultConfiguration is unsigned 32 bit.
func DefaultConfiguration() Configuration {
	return Configuration{
		DataType: DataType{Bits: DEFAULT_BITS},
	}
}
