package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Features is an ordered list of car feature labels, stored as jsonb.
type Features []string

func (f Features) Value() (driver.Value, error) {
	if f == nil {
		f = Features{}
	}
	return json.Marshal(f)
}

func (f *Features) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = Features{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Features", src)
}
