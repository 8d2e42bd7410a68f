package repository

import (
	"database/sql"
	"time"
)

// storeTime serializes an instant together with its originating zone name,
// so a 09:00 Tokyo departure survives a round trip as 09:00 Tokyo. The
// instant is stored in RFC3339 with its own offset; the zone column carries
// the IANA name.
func storeTime(t time.Time) (value, zone string) {
	return t.Format(time.RFC3339), t.Location().String()
}

// loadTime reverses storeTime. Unknown zone names degrade to the stored
// fixed offset rather than failing the whole row.
func loadTime(value, zone string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	if loc, lerr := time.LoadLocation(zone); lerr == nil {
		t = t.In(loc)
	}
	return t, nil
}

// nullableString converts a possibly-empty string to a SQL value, mapping
// "" to NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// stringOrEmpty unwraps a sql.NullString.
func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
