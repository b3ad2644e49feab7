package registry

import (
	"fmt"
)

// Params holds behavior arguments as decoded from a scene file.
type Params map[string]any

// Float returns p[key] as a float64, or def when the key is absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return def, fmt.Errorf("param %s: expected a number, got %T", key, v)
	}
}

// Int returns p[key] as an int, or def when the key is absent.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return def, fmt.Errorf("param %s: expected an integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return def, fmt.Errorf("param %s: expected an integer, got %T", key, v)
	}
}

// String returns p[key] as a string, or def when the key is absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("param %s: expected a string, got %T", key, v)
	}
	return s, nil
}

// Bool returns p[key] as a bool, or def when the key is absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("param %s: expected a bool, got %T", key, v)
	}
	return b, nil
}

// Sub returns p[key] as nested params, or nil when the key is absent.
func (p Params) Sub(key string) (Params, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch m := v.(type) {
	case Params:
		return m, nil
	case map[string]any:
		return Params(m), nil
	default:
		return nil, fmt.Errorf("param %s: expected a mapping, got %T", key, v)
	}
}
