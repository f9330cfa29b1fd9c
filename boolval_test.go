package boolval

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestBoolSuite(t *testing.T) {
	suite.Run(t, new(BoolSuite))
}

type BoolSuite struct {
	suite.Suite
}

func (suite *BoolSuite) TestSingletonIdentity() {
	suite.Same(True(), True())
	suite.Same(False(), False())
	suite.NotSame(True(), False())
}

func (suite *BoolSuite) TestIsBool() {
	suite.True(IsBool(True()))
	suite.True(IsBool(False()))
	suite.True(IsBool(New(true)))
	suite.False(IsBool(true))
	suite.False(IsBool(false))
	suite.False(IsBool(1))
	suite.False(IsBool("1"))
	suite.False(IsBool(nil))
	suite.False(IsBool(struct{}{}))
}

func (suite *BoolSuite) TestOf() {
	suite.Same(True(), Of(true))
	suite.Same(False(), Of(false))
}

func (suite *BoolSuite) TestCoerceReturnsSingletons() {
	suite.Same(True(), Coerce(true))
	suite.Same(True(), Coerce(1))
	suite.Same(True(), Coerce("1"))
	suite.Same(False(), Coerce(false))
	suite.Same(False(), Coerce(0))
	suite.Same(False(), Coerce(""))
	suite.Same(False(), Coerce(nil))
}

func (suite *BoolSuite) TestCoerceIdempotent() {
	for _, v := range []interface{}{true, false, 17, "", New(true), New(false)} {
		once := Coerce(v)
		suite.Same(once, Coerce(once))
	}
}

func (suite *BoolSuite) TestIndependentInstances() {
	b := New(true)
	suite.True(IsBool(b))
	suite.True(b.Bool())
	suite.NotSame(True(), b)
	suite.Same(True(), Coerce(b))

	f := New(false)
	suite.True(IsBool(f))
	suite.False(f.Bool())
	suite.NotSame(False(), f)
	suite.Same(False(), Coerce(f))
}

func (suite *BoolSuite) TestConversions() {
	suite.Equal(1, True().Int())
	suite.Equal(0, False().Int())
	suite.Equal("1", True().String())
	suite.Equal("0", False().String())
	suite.True(True().Bool())
	suite.False(False().Bool())
}

func (suite *BoolSuite) TestNilReceiver() {
	var b *Bool
	suite.False(b.Bool())
	suite.Equal(0, b.Int())
	suite.Equal("0", b.String())
	suite.False(Truthy(b))
	suite.Same(False(), Coerce(b))
}

func (suite *BoolSuite) TestHash() {
	suite.Equal(True().Hash(), New(true).Hash())
	suite.Equal(False().Hash(), New(false).Hash())
	suite.NotEqual(True().Hash(), False().Hash())
}

func (suite *BoolSuite) TestType() {
	suite.Equal(Type(), reflect.TypeOf(True()))
	suite.Equal(Type(), reflect.TypeOf(New(false)))
	suite.NotEqual(Type(), reflect.TypeOf(true))
}
