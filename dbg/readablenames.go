package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns arbitrary values into memorable names, so tree dumps read as
// "CuddlyMarmot" rather than a pointer hex string. Names are memoized per
// value and never freed, which is fine for the debugging sessions this is
// meant for.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so keep them nondeterministic
	// as a reminder that they don't survive across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
