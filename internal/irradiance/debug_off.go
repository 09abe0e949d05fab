//go:build !debug
// +build !debug

package irradiance

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
