package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TownID accepts both JSON strings and JSON numbers and always marshals as a string.
type TownID string

func (id *TownID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TownID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("town id: %w", err)
	}
	*id = TownID(n.String())
	return nil
}

func (id TownID) String() string { return string(id) }
