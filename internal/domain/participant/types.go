package participant

import (
	"strconv"

	"card-drop/internal/pkg/errs"
)

var (
	ErrNegativePoints = errs.New("points must not be negative")
	ErrEmptyItem      = errs.New("item id must not be empty")
)

// ID is the messaging-platform user id.
type ID int64

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, errs.Wrapf(errs.ErrInvalidParticipantID, "parse %q", s)
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
