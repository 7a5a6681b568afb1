package condb

import (
	"encoding/json"
	"reflect"
)

// doc is the JSON form of a document as the memory and postgres drivers keep
// it: numbers are float64 and ObjectIDs are hex strings.
type doc map[string]any

func toDoc(v any) (doc, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	d := doc{}
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// decodeDocs re-encodes src (a doc or a []doc) into out through JSON, so
// model structs decode with their json tags.
func decodeDocs(src, out any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (d doc) matches(filter doc) bool {
	for k, want := range filter {
		got, ok := d[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// apply writes set into d and reports whether any field changed.
func (d doc) apply(set doc) bool {
	changed := false
	for k, v := range set {
		if old, ok := d[k]; !ok || !reflect.DeepEqual(old, v) {
			changed = true
		}
		d[k] = v
	}
	return changed
}
