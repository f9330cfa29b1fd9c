package boolval

type Bool struct {
	v uint8
}

var (
	sharedTrue  = &Bool{v: 1}
	sharedFalse = &Bool{}
)

func True() *Bool  { return sharedTrue }
func False() *Bool { return sharedFalse }

func New(v bool) *Bool {
	if v {
		return &Bool{v: 1}
	}
	return &Bool{}
}

func (b *Bool) Bool() bool { return b != nil && b.v != 0 }
