package repository

import (
	"encoding/base64"
	"strings"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999999999Z07:00" // reduce precision from RFC3339Nano as date format

	cursorSep = "|"

	DefaultPageNum = 10
	PageMaxNum     = 50
)

// DecodeCursor will decode cursor from user for mysql.
// id is empty for cursors that carry only a timestamp.
func DecodeCursor(encoded string) (t time.Time, id string, err error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, "", err
	}

	timeString, id, _ := strings.Cut(string(byt), cursorSep)
	t, err = time.Parse(timeFormat, timeString)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, id, nil
}

// EncodeCursor will encode cursor from mysql to user.
// The id breaks ties between rows created at the same instant.
func EncodeCursor(t time.Time, id string) string {
	raw := t.Format(timeFormat)
	if id != "" {
		raw += cursorSep + id
	}
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// PageVerify clamps num into [1, PageMaxNum], falling back to DefaultPageNum.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num > PageMaxNum {
		*num = PageMaxNum
	}
}
