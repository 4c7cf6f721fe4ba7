package clients

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString absorbs registry fields that arrive as either JSON strings or
// numbers (the government datastore is not consistent about this). Null
// decodes to the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the raw field text.
func (f FlexString) String() string { return string(f) }

// Int parses the field as an integer, tolerating a float representation.
func (f FlexString) Int() (int, bool) {
	if f == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(string(f)); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(string(f), 64); err == nil {
		return int(v), true
	}
	return 0, false
}
