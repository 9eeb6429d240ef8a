package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EditPermission is a tagged variant: either every field is editable or
// only an explicit set. The zero value permits nothing.
type EditPermission struct {
	all  bool
	keys []FieldKey
}

// AllFields grants edit access to the whole field bag.
func AllFields() EditPermission { return EditPermission{all: true} }

// FieldSet grants edit access to the listed keys only.
func FieldSet(keys ...FieldKey) EditPermission {
	return EditPermission{keys: append([]FieldKey(nil), keys...)}
}

// Allows reports whether the permission covers the given field.
func (p EditPermission) Allows(f FieldKey) bool {
	if p.all {
		return true
	}
	for _, k := range p.keys {
		if k == f {
			return true
		}
	}
	return false
}

// All reports whether the permission is the wildcard variant.
func (p EditPermission) All() bool { return p.all }

// Fields returns the explicit key set; nil for the wildcard variant.
func (p EditPermission) Fields() []FieldKey {
	return append([]FieldKey(nil), p.keys...)
}

// Wire format: the string "*" for the wildcard, else a list of keys.

func (p EditPermission) MarshalJSON() ([]byte, error) {
	if p.all {
		return json.Marshal("*")
	}
	keys := p.keys
	if keys == nil {
		keys = []FieldKey{}
	}
	return json.Marshal(keys)
}

func (p *EditPermission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return p.fromScalar(s)
	}
	var keys []FieldKey
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("edit_fields must be %q or a list of field keys", "*")
	}
	*p = EditPermission{keys: keys}
	return nil
}

func (p EditPermission) MarshalYAML() (any, error) {
	if p.all {
		return "*", nil
	}
	keys := p.keys
	if keys == nil {
		keys = []FieldKey{}
	}
	return keys, nil
}

func (p *EditPermission) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		return p.fromScalar(s)
	}
	var keys []FieldKey
	if err := node.Decode(&keys); err != nil {
		return fmt.Errorf("edit_fields must be %q or a list of field keys", "*")
	}
	*p = EditPermission{keys: keys}
	return nil
}

func (p *EditPermission) fromScalar(s string) error {
	if s != "*" {
		return fmt.Errorf("edit_fields string form must be %q, got %q", "*", s)
	}
	*p = EditPermission{all: true}
	return nil
}
