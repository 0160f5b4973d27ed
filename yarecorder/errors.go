package yarecorder

import "errors"

var (
	ErrFailedToRecord = errors.New("[RECORDER] failed to record call")
	ErrFailedToFetch  = errors.New("[RECORDER] failed to fetch calls")
	ErrFailedToReset  = errors.New("[RECORDER] failed to reset calls")
	ErrFailedToDecode = errors.New("[RECORDER] failed to decode call")
)
