package calculation

// Logger is the minimal logging surface the engine needs. The CLI provides a
// std-log-backed implementation when --debug is set; a nil logger disables
// all output.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
