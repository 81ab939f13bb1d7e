package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the textual forms SQLite hands back for TIMESTAMP
// columns when the driver cannot see the declared column type.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// scanTime scans a timestamp column that may arrive as time.Time or text.
type scanTime struct {
	t *time.Time
}

func (s scanTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s.t = time.Time{}
		return nil
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("%w: unsupported timestamp type %T", ErrScanningRow, value)
	}
}

func (s scanTime) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, v); err == nil {
			*s.t = parsed
			return nil
		}
	}
	return fmt.Errorf("%w: unparsable timestamp %q", ErrScanningRow, v)
}
