package logger

// Nop is a Logger that discards everything. Intended for tests.
type Nop struct{}

var _ Logger = Nop{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

func (n Nop) With(...any) Logger { return n }
