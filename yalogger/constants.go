package yalogger

// Level is a log severity. The numeric values match logrus so a Level can be
// handed to the backend without a lookup table.
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

type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID = "request_id"
	KeyUserID    = "user_id"
	KeyChatID    = "chat_id"
	KeyMethod    = "method"
)

const defaultTimestampFormat = "2006-01-02 15:04:05"
