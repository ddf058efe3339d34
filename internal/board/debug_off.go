//go:build !lighthouse_debug

package board

const debugChecks = false
