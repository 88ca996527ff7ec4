package logs

type noopLoggers struct{}

func (l *noopLoggers) Check() error                   { return nil }
func (l *noopLoggers) SetLogSource(string) error      { return nil }
func (l *noopLoggers) SetLoggerSource(string) error   { return nil }
func (l *noopLoggers) Log(output ...interface{})      {}
func (l *noopLoggers) LogError(output ...interface{}) {}
func (l *noopLoggers) Close() error                   { return nil }

// NewNoopLogger returns loggers which log nowhere.
func NewNoopLogger() Loggers {
	return &noopLoggers{}
}
