package rowan

import "go.uber.org/zap"

// logger is the package-wide structured logger. It is a nop logger by
// default so nothing on the frame path pays for logging; Run swaps in a
// development logger when RunConfig.Debug is set.
var logger = zap.NewNop()

// SetLogger replaces the engine's logger. Passing nil restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
