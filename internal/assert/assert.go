package assert

import (
	"fmt"
)

// That panics with the formatted message if cond is false and debug
// assertions are enabled. Build with the attrsdebug tag to enable them.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// NonNegative panics if offset is negative, independent of Enabled.
func NonNegative(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("negative element offset %d", offset))
	}
}
