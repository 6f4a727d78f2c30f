package utils

import (
	"strings"
	"time"
)

// NormalizeDate converts the mobile app's DD/MM/YYYY dates into the
// sortable YYYY-MM-DD form used in the datastore. Dates already in storage
// form are passed through. Empty or unparseable input returns "" so the
// caller stores NULL instead of a malformed string.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
