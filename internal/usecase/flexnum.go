package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FlexFloat accepts a JSON number or a numeric string. Money fields arrive in
// both shapes from existing clients.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "failed to decode numeric string")
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid numeric string %q", s)
		}
		*f = FlexFloat(parsed)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "failed to decode number")
	}
	*f = FlexFloat(v)

	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
