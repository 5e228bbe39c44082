package form

import "sort"

// Data is an ordered key/value collection. Keys are unique and insertion
// order is serialization order. The zero value is ready to use.
type Data struct {
	keys   []string
	values map[string]any
}

// Pair is a single key/value entry.
type Pair struct {
	Key   string
	Value any
}

// NewData creates an empty collection.
func NewData() *Data {
	return &Data{}
}

// FromPairs builds a collection from pairs, keeping their order. A repeated
// key replaces the earlier value in place.
func FromPairs(pairs ...Pair) *Data {
	d := &Data{}
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// FromMap builds a collection from a map. Map iteration order is random, so
// keys are sorted to keep the encoded output stable.
func FromMap(m map[string]any) *Data {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := &Data{}
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}

// Set stores value under key. An existing key keeps its position.
func (d *Data) Set(key string, value any) *Data {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored under key.
func (d *Data) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Del removes key.
func (d *Data) Del(key string) {
	if d == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (d *Data) Range(fn func(key string, value any) bool) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			return
		}
	}
}

// QueryParams returns d itself, so a Data can be passed wherever a Model is
// expected.
func (d *Data) QueryParams() (*Data, error) {
	return d, nil
}

// Model is implemented by query models: structured values that project
// their own fields into ordered parameters.
type Model interface {
	QueryParams() (*Data, error)
}

// ModelFunc adapts a function into a Model.
type ModelFunc func() (*Data, error)

// QueryParams calls f.
func (f ModelFunc) QueryParams() (*Data, error) {
	return f()
}
