package bitmix

import "fmt"

// Value is a tagged union over a decoded TLV record. Object, Array and
// String values borrow directly from the buffer they were decoded from and
// are only valid as long as that buffer is not mutated again.
type Value struct {
	kind  Kind
	buf   []byte
	start int
	end   int
	bytes []byte

	ival int64
	fval float64
}

// Kind reports which alternative of the tagged union v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the JSON null literal.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean value of a True or False Value.
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	default:
		return false, fmt.Errorf("bitmix: value is %s, not bool", v.kind)
	}
}

// Int returns the integer value of a Value. Float values are converted
// with a plain cast, which truncates toward zero; range is not checked.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindInteger:
		return v.ival, nil
	case KindFloat:
		return int64(v.fval), nil
	default:
		return 0, fmt.Errorf("bitmix: value is %s, not a number", v.kind)
	}
}

// Float returns the float value of a Value. Integers are automatically
// converted to float.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.fval, nil
	case KindInteger:
		return float64(v.ival), nil
	default:
		return 0, fmt.Errorf("bitmix: value is %s, not a number", v.kind)
	}
}

// StringBytes returns the decoded string content. The returned slice
// borrows from the underlying buffer.
func (v Value) StringBytes() ([]byte, error) {
	if v.kind != KindString {
		return nil, fmt.Errorf("bitmix: value is %s, not a string", v.kind)
	}
	return v.bytes, nil
}

// String returns the decoded string content as a copy.
func (v Value) String() (string, error) {
	b, err := v.StringBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Array returns the Value as an Array view for iteration.
func (v Value) Array() (*Array, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("bitmix: value is %s, not an array", v.kind)
	}
	return &Array{buf: v.buf, start: v.start, end: v.end}, nil
}

// Object returns the Value as an Object view for iteration.
func (v Value) Object() (*Object, error) {
	if v.kind != KindObject {
		return nil, fmt.Errorf("bitmix: value is %s, not an object", v.kind)
	}
	return &Object{buf: v.buf, start: v.start, end: v.end}, nil
}

// Interface recursively converts v into plain Go values: map[string]any
// for objects, []any for arrays, string/int64/float64/bool/nil for
// scalars.
func (v Value) Interface() (interface{}, error) {
	switch v.kind {
	case KindObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		dst := make(map[string]interface{})
		it := obj.Iter()
		for {
			key, val, ok, err := it.Next()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			elem, err := val.Interface()
			if err != nil {
				return nil, fmt.Errorf("parsing element %q: %w", key, err)
			}
			dst[string(key)] = elem
		}
		return dst, nil
	case KindArray:
		arr, err := v.Array()
		if err != nil {
			return nil, err
		}
		dst := []interface{}{}
		it := arr.Iter()
		for {
			val, ok, err := it.Next()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			elem, err := val.Interface()
			if err != nil {
				return nil, err
			}
			dst = append(dst, elem)
		}
		return dst, nil
	case KindString:
		return v.String()
	case KindInteger:
		return v.ival, nil
	case KindFloat:
		return v.fval, nil
	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	case KindNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("bitmix: unknown value kind %v", v.kind)
	}
}
