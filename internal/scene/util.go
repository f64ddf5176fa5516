package scene

import "fmt"

// toFloat coerces a decoded YAML scalar (int or float64, however
// gopkg.in/yaml.v3 chose to represent it) to float64.
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %T", ErrParse, v)
	}
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: expected an integer, got %T", ErrParse, v)
	}
}

func floatField(m map[string]interface{}, key string) (float64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	return toFloat(raw)
}

func intField(m map[string]interface{}, key string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	return toInt(raw)
}

// optionalFloatField returns (value, true, nil) if key is present,
// (0, false, nil) if it is absent, or an error if it is present but not a
// number.
func optionalFloatField(m map[string]interface{}, key string) (float64, bool, error) {
	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	f, err := toFloat(raw)
	return f, err == nil, err
}

// floatSlice reads key as an n-element numeric array, as used for points,
// vectors and colors.
func floatSlice(m map[string]interface{}, key string, n int) ([]float64, error) {
	raw, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	return toFloats(raw, n)
}

func toFloats(raw interface{}, n int) ([]float64, error) {
	arr, ok := raw.([]interface{})
	if !ok || len(arr) != n {
		return nil, fmt.Errorf("%w: expected a %d-element array, got %v", ErrParse, n, raw)
	}
	out := make([]float64, n)
	for i, v := range arr {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
