package helper

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ParseDate reads the YYYY-MM-DD format every date field on the wire uses.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// FormatDatePtr keeps nil dates nil on the way out.
func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
