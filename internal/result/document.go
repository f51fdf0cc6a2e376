// Package result holds parsed-but-unvalidated model responses as generic
// JSON documents with tolerant get-or-default accessors. The model is not
// guaranteed to honor the requested shape, so every lookup degrades to a
// caller-supplied default instead of failing.
package result

// Document is one JSON object from a model response.
type Document map[string]any

// String returns the named field as a string, or def if it is missing or not
// a string.
func (d Document) String(key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

// Float returns the named field as a float64, or def if it is missing or not
// numeric.
func (d Document) Float(key string, def float64) float64 {
	if v, ok := d.Number(key); ok {
		return v
	}
	return def
}

// Int returns the named field as an int, or def if it is missing or not
// numeric. JSON numbers decode as float64; values are truncated.
func (d Document) Int(key string, def int) int {
	if v, ok := d.Number(key); ok {
		return int(v)
	}
	return def
}

// Number reports the named field as a float64 and whether it was present and
// numeric.
func (d Document) Number(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Strings returns the named field as a list of strings, skipping any
// non-string elements. Missing or mistyped fields yield nil.
func (d Document) Strings(key string) []string {
	list, ok := d[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Child returns the named field as a nested Document, or an empty Document
// if it is missing or not an object. Accessors on the empty Document all
// yield their defaults.
func (d Document) Child(key string) Document {
	if m, ok := d[key].(map[string]any); ok {
		return Document(m)
	}
	return Document{}
}

// Children returns the named field as a list of nested Documents, skipping
// any non-object elements.
func (d Document) Children(key string) []Document {
	list, ok := d[key].([]any)
	if !ok {
		return nil
	}
	var out []Document
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Document(m))
		}
	}
	return out
}

// Summary returns the analysis summary block.
func (d Document) Summary() Document { return d.Child("summary") }

// Rocks returns the per-rock observation list.
func (d Document) Rocks() []Document { return d.Children("rocks") }
