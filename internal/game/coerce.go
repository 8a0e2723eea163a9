package game

import (
	"encoding/json"
	"fmt"
)

// The game client serializes some fields inconsistently across builds:
// hintUsed arrives as a native boolean or as a string, and timeToFindZone is
// sometimes omitted entirely. Coercion is explicit here rather than silent
// defaulting scattered through handlers.

// FlexBool accepts a JSON boolean or a JSON string. The string "true" is
// true; every other string is false. Any other JSON type is a parse error,
// which callers surface as a malformed request.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	v, err := ParseFlexBool(data)
	if err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

// Bool returns the plain boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// ParseFlexBool coerces raw JSON into a boolean under the game client's
// loose contract.
func ParseFlexBool(data []byte) (bool, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return false, err
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return v == "true", nil
	default:
		return false, fmt.Errorf("expected boolean or string, got %T", raw)
	}
}
