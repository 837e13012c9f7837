package securefin

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a custom type that handles the backend's mixed date encodings.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	// Remove quotes
	str := strings.Trim(string(data), `"`)

	// Handle null/empty
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	// Try parsing as date only first (YYYY-MM-DD)
	t, err := time.Parse("2006-01-02", str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Try parsing as full timestamp (RFC3339)
	t, err = time.Parse(time.RFC3339, str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Try parsing with time but no timezone
	t, err = time.Parse("2006-01-02T15:04:05", str)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// Amount is a monetary value. The backend serializes decimals as strings
// on some endpoints and as numbers on others; both are accepted.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler for Amount
func (a *Amount) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		*a = 0
		return nil
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("unable to parse amount: %s", str)
	}

	*a = Amount(value)
	return nil
}

// MarshalJSON implements json.Marshaler for Amount
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 {
	return float64(a)
}
