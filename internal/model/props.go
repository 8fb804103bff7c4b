package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Props is the free-form property bag handed to the render composition.
// It is stored serialized as JSON.
type Props map[string]any

func (p Props) Value() (driver.Value, error) {
	if p == nil {
		p = Props{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal Props: %w", err)
	}
	return b, nil
}

func (p *Props) Scan(src interface{}) error {
	if src == nil {
		*p = Props{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Props.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal Props: %w", err)
	}
	return nil
}
