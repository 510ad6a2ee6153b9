package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Year is a completion year. It decodes from a JSON number, a numeric string,
// an empty string or null; the zero value means unknown.
type Year int

// UnmarshalJSON implements json.Unmarshaler.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*y = 0
			return nil
		}
		data = []byte(s)
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return ErrInvalidYear
	}
	*y = Year(n)
	return nil
}
