package yalogger

// Level is the minimum severity a message must have to be emitted.
// The numeric values match logrus levels, so casting is lossless.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// BaseLoggerType selects the logging backend a BaseLogger is built on.
type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID = "request_id"

	defaultTimestampFormat = "2006-01-02 15:04:05"
)
