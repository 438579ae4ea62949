package manifest

import (
	"iter"
	"strings"
)

// Assignment binds a logical key to a literal value.
type Assignment struct {
	Key   string
	Value string
}

// Values is an ordered set of assignments with unique keys.
type Values []Assignment

// ParseAssignments builds Values from "key=value" tokens.
//
// Each token is split on its first '='. Everything after it is the value,
// so "b=2=3" assigns "2=3" to b. A token without '=' assigns the empty
// string. A repeated key keeps its first position and takes the last value.
func ParseAssignments(tokens ...string) Values {
	var v Values

	for _, tok := range tokens {
		key, value, _ := strings.Cut(tok, "=")
		v = v.Set(key, value)
	}

	return v
}

// Set returns v with key assigned to value.
func (v Values) Set(key, value string) Values {
	for i := range v {
		if v[i].Key == key {
			v[i].Value = value

			return v
		}
	}

	return append(v, Assignment{Key: key, Value: value})
}

// All returns an iterator over key/value pairs in order.
func (v Values) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, a := range v {
			if !yield(a.Key, a.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (v Values) Keys() []string {
	keys := make([]string, len(v))
	for i, a := range v {
		keys[i] = a.Key
	}

	return keys
}

// Preset is a named set of assignments stored in the manifest.
type Preset struct {
	Name   string
	Values Values
}

// Presets is an ordered list of presets with unique names.
type Presets []Preset

// Lookup returns the assignments of the named preset.
func (p Presets) Lookup(name string) (Values, bool) {
	for _, preset := range p {
		if preset.Name == name {
			return preset.Values, true
		}
	}

	return nil, false
}

// Names returns the preset names in order.
func (p Presets) Names() []string {
	names := make([]string, len(p))
	for i, preset := range p {
		names[i] = preset.Name
	}

	return names
}
