package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayHours is a single day's opening window. A closed day has Closed set and
// empty Open/Close times.
type DayHours struct {
	Closed bool
	Open   string
	Close  string
}

// WeeklyHours holds one DayHours per weekday, Monday first.
type WeeklyHours [7]DayHours

// MarshalJSON renders the schedule as a JSON object keyed by lowercase
// weekday name, the text format the restaurants.operating_hours column
// stores. Days are emitted in Monday..Sunday order so the serialized form is
// stable across runs.
func (w WeeklyHours) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range w {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", weekdayNames[i])
		if day.Closed {
			buf.WriteString(`"closed"`)
		} else {
			fmt.Fprintf(&buf, `{"open":%q,"close":%q}`, day.Open, day.Close)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i, name := range weekdayNames {
		entry, ok := raw[name]
		if !ok {
			return fmt.Errorf("operating hours missing %s", name)
		}
		if string(entry) == `"closed"` {
			w[i] = DayHours{Closed: true}
			continue
		}
		var window struct {
			Open  string `json:"open"`
			Close string `json:"close"`
		}
		if err := json.Unmarshal(entry, &window); err != nil {
			return fmt.Errorf("operating hours for %s: %w", name, err)
		}
		w[i] = DayHours{Open: window.Open, Close: window.Close}
	}
	return nil
}

// String returns the serialized JSON form, which is what gets written into
// SQL literals.
func (w WeeklyHours) String() string {
	data, _ := json.Marshal(w)
	return string(data)
}
