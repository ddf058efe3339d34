package board

import "fmt"

// assert panics with a formatted message when cond is false and the package
// was built with the lighthouse_debug tag. Release builds compile it away.
func assert(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic(fmt.Sprintf("board: "+format, args...))
	}
}
