package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime is a timestamp carried as RFC 3339 with its UTC offset, so API
// clients see the same instant the server recorded.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	*d = DateTime(t)
	return nil
}

// Time returns d as a time.Time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}
