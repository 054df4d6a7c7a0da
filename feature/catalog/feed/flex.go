package feed

import (
	"encoding/json"
	"time"

	"catalog-importer/core/utils"
)

// FlexTime accepts a numeric epoch timestamp or a textual date and degrades
// to the zero value on any parse failure. Ptr reports the zero value as nil,
// so unparsable dates become "no value" instead of aborting the record.
type FlexTime time.Time

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if parsed := utils.ParseTime(raw); parsed != nil {
		*t = FlexTime(*parsed)
	}
	return nil
}

// Ptr returns the parsed time, or nil when absent or unparsable.
// Safe on a nil receiver.
func (t *FlexTime) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	tt := time.Time(*t)
	if tt.IsZero() {
		return nil
	}
	return &tt
}

// FlexBool accepts true/false, 0/1 and their string forms.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	*b = FlexBool(utils.ToBool(raw))
	return nil
}

func (b FlexBool) Bool() bool { return bool(b) }

// FlexInt accepts numbers and numeric strings.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	*i = FlexInt(utils.ToInt64(raw))
	return nil
}

func (i FlexInt) Int() int { return int(i) }

// FlexFloat accepts numbers and numeric strings.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	*f = FlexFloat(utils.ToFloat(raw))
	return nil
}

func (f FlexFloat) Float() float64 { return float64(f) }

// FlexString accepts strings and stringifies non-string scalars.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	*s = FlexString(utils.ToString(raw))
	return nil
}

func (s FlexString) String() string { return string(s) }
