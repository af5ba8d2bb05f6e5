package ptr

import "time"

func Of[T any](v T) *T {
	return &v
}

// UnixFromTime returns nil for a nil time.
func UnixFromTime(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
