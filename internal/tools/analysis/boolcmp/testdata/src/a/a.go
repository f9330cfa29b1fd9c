package a

import "boolval"

func compare(x, y *boolval.Bool) bool {
	if x == y { // want `identity comparison of boolean objects, compare Bool\(\) results instead`
		return true
	}
	if x != boolval.True() { // want `identity comparison of boolean objects, compare Bool\(\) results instead`
		return false
	}
	return boolval.New(true) == boolval.False() // want `identity comparison of boolean objects, compare Bool\(\) results instead`
}

func fine(x, y *boolval.Bool) bool {
	if x == nil {
		return false
	}
	if x.Bool() == y.Bool() {
		return true
	}
	return x.Bool() != y.Bool()
}
