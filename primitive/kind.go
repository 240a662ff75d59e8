package primitive

import (
	"math"
	"math/big"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a Go numeric type an inverse can be generated for.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindDefault matches the usize signature of the original derive.
const KindDefault = KindUint

var goNames = map[KindEnum]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// FromName returns the kind for a Go type name such as "uint" or "float64".
func FromName(name string) (KindEnum, bool) {
	for k, n := range goNames {
		if n == name {
			return k, true
		}
	}

	return 0, false
}

// Names returns the Go type names of all kinds in declaration order.
func Names() []string {
	names := make([]string, 0, KindTotal)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		names = append(names, k.GoName())
	}

	return names
}

// GoName returns the Go type name of the kind, or "" for an invalid kind.
func (k KindEnum) GoName() string {
	return goNames[k]
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// Represents reports whether the constant v can be written as an untyped
// constant of kind k without a compile error: integers must be whole and fit
// the bit size, floats accept anything.
func (k KindEnum) Represents(v *big.Rat) bool {
	if v == nil || !k.IsValid() {
		return false
	}

	if k.IsFloat() {
		return true
	}

	if !v.IsInt() {
		return false
	}

	n := v.Num()
	bits := k.Bits()

	if k.IsUnsigned() {
		return n.Sign() >= 0 && n.BitLen() <= bits
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if n.Sign() >= 0 {
		return n.Cmp(limit) < 0
	}

	return n.Cmp(limit.Neg(limit)) >= 0
}
