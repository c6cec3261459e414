package dbg

import (
	"reflect"
	"sync"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that vertices in a
// debug dump are easier to tell apart than hex addresses. Names are memoized
// by address, so naming an object does not keep it alive. Once the object is
// collected its address, and therefore its name, may be handed to another one.

// Pointer-like values are keyed by address only; anything else by value.
type memoKey struct {
	addr  uintptr
	value interface{}
}

var (
	mu   sync.Mutex
	memo = make(map[memoKey]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name of obj, "Ø" for nil. The memo only ever
// grows by one short string per distinct address and holds no reference to a
// pointer obj, so it is safe to call from panic messages.
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return "Ø"
	}

	var key memoKey
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		if v.IsNil() {
			return "Ø"
		}
		key.addr = v.Pointer()
	default:
		key.value = obj
	}

	mu.Lock()
	defer mu.Unlock()

	if r, ok := memo[key]; ok {
		return r
	}
	r := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[key] = r
	return r
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
