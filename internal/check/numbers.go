package check

import (
	"cmp"
	"reflect"
)

// Family groups numeric kinds that compare exactly with each other.
type Family int

const (
	NotNumeric Family = iota
	Integer
	Float
)

// FamilyOf classifies a reflect kind.
func FamilyOf(k reflect.Kind) Family {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Float
	default:
		return NotNumeric
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// CompareNumbers compares a and b when both belong to the same numeric family and
// returns -1, 0 or +1. Signed and unsigned integers compare exactly, without
// conversion loss. ok is false when either operand is not numeric or the families
// differ.
func CompareNumbers(a, b any) (c int, ok bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0, false
	}
	af, bf := FamilyOf(av.Kind()), FamilyOf(bv.Kind())
	if af == NotNumeric || af != bf {
		return 0, false
	}
	if af == Float {
		return cmp.Compare(av.Float(), bv.Float()), true
	}
	return compareIntegers(av, bv), true
}

func compareIntegers(a, b reflect.Value) int {
	au, bu := isUnsigned(a.Kind()), isUnsigned(b.Kind())
	switch {
	case au && bu:
		return cmp.Compare(a.Uint(), b.Uint())
	case !au && !bu:
		return cmp.Compare(a.Int(), b.Int())
	case au:
		// unsigned a, signed b
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	default:
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	}
}
