package style

import "encoding/json"

// MarshalJSON emits the canonical wire form: null for the default, a
// string for a uniform color, an array of strings for a per-edge list,
// or an array of numbers for colormap values.
func (s ColorSpec) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case specSingle:
		return json.Marshal(s.names[0])
	case specList:
		return json.Marshal(s.names)
	case specValues:
		return json.Marshal(s.values)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts every input form [FromAny] does: a color string,
// a list of color strings, a list of numbers, or a list of component
// tuples.
func (s *ColorSpec) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	spec, err := FromAny(v)
	if err != nil {
		return err
	}
	*s = spec
	return nil
}

// UnmarshalJSON accepts either a single number or an array of numbers,
// mirroring the scalar-or-list width input of the drawing options.
func (w *Widths) UnmarshalJSON(data []byte) error {
	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		*w = list
		return nil
	}
	var single float64
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*w = Widths{single}
	return nil
}
