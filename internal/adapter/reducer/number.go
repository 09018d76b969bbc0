package reducer

import "math"

// number accumulates integers as int64 until the first float is seen.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n *number) add(v interface{}) bool {
	switch x := v.(type) {
	case int:
		n.addInt(int64(x))
	case int32:
		n.addInt(int64(x))
	case int64:
		n.addInt(x)
	case float32:
		n.addFloat(float64(x))
	case float64:
		if x == math.Trunc(x) && !n.isFloat && math.Abs(x) < 1<<53 {
			n.addInt(int64(x))
		} else {
			n.addFloat(x)
		}
	default:
		return false
	}
	return true
}

func (n *number) addInt(v int64) {
	if n.isFloat {
		n.f += float64(v)
		return
	}
	n.i += v
}

func (n *number) addFloat(v float64) {
	if !n.isFloat {
		n.isFloat = true
		n.f = float64(n.i)
	}
	n.f += v
}

func (n number) value() interface{} {
	if n.isFloat {
		return n.f
	}
	return n.i
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func toFloat(v interface{}) (float64, bool) {
	var n number
	if !n.add(v) {
		return 0, false
	}
	return n.float(), true
}
