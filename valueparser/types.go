package valueparser

// ParsableType is the set of types ParseValue can produce from a string,
// including named types built on them (yalogger.Level, yaentityparser.Dialect).
type ParsableType interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// Unmarshalable is implemented by types that parse themselves from a string
// without going through encoding.TextUnmarshaler.
type Unmarshalable interface {
	Unmarshal(data string) error
}
