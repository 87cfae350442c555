package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const layoutData = "2006-01-02"

var ErrDataInvalida = errors.New("data deve estar no formato YYYY-MM-DD ou RFC3339")

// Data is a JSON date accepting "YYYY-MM-DD" (midnight UTC) or RFC3339.
type Data struct {
	time.Time
}

func (d *Data) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrDataInvalida
	}
	t, err := ParseData(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layoutData, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrDataInvalida
}
