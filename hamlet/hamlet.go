// Package hamlet holds tiny "to be, or not to be" assertion helpers for
// tests: must_be states what has to hold, wont_be what must not.
package hamlet

import (
	"reflect"
	"testing"
)

type Hamlet struct {
	t        testing.TB
	positive bool
}

func Specifications(t testing.TB) (*Hamlet, *Hamlet) {
	return &Hamlet{t: t, positive: true}, &Hamlet{t: t, positive: false}
}

func (it *Hamlet) verdict(outcome bool, form string, details ...interface{}) {
	it.t.Helper()
	if outcome != it.positive {
		if it.positive {
			it.t.Fatalf("must be: "+form, details...)
		}
		it.t.Fatalf("wont be: "+form, details...)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.verdict(reflect.DeepEqual(expected, actual), "equal, expected %#v, actual %#v", expected, actual)
}

func (it *Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	it.verdict(isNil(actual), "nil, actual %#v", actual)
}

func (it *Hamlet) True(actual bool) {
	it.t.Helper()
	it.verdict(actual, "true")
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	it.verdict(panics(todo), "panic")
}

func panics(todo func()) (happened bool) {
	defer func() {
		happened = recover() != nil
	}()
	todo()
	return false
}
