//go:build !attrsdebug

package assert

// Enabled reports whether debug assertions are compiled in.
const Enabled = false
