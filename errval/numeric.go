package errval

// Numeric constrains the value kind of an ErrorValue to the arithmetic
// types, excluding bool and complex. The error component is always float64.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float constrains a type parameter to the floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Integer constrains a type parameter to the integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
