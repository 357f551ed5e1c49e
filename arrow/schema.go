// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"fmt"
	"sort"
	"strings"
)

// Metadata is an ordered list of string key/value pairs.
type Metadata struct {
	keys   []string
	values []string
}

func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: metadata key/value length mismatch")
	}
	n := len(keys)
	m := Metadata{
		keys:   make([]string, n),
		values: make([]string, n),
	}
	copy(m.keys, keys)
	copy(m.values, values)
	return m
}

// MetadataFrom builds metadata from a map, ordered by key.
func MetadataFrom(kv map[string]string) Metadata {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = kv[k]
	}
	return Metadata{keys: keys, values: values}
}

func (m Metadata) Len() int         { return len(m.keys) }
func (m Metadata) Keys() []string   { return m.keys }
func (m Metadata) Values() []string { return m.values }

// FindKey returns the index of key, or -1.
func (m Metadata) FindKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Equal reports whether the two metadata sets hold the same pairs, ignoring
// order.
func (m Metadata) Equal(o Metadata) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		j := o.FindKey(k)
		if j < 0 || o.values[j] != m.values[i] {
			return false
		}
	}
	return true
}

// Contains reports whether every pair of o is present in m.
func (m Metadata) Contains(o Metadata) bool {
	for i, k := range o.keys {
		j := m.FindKey(k)
		if j < 0 || m.values[j] != o.values[i] {
			return false
		}
	}
	return true
}

func (m Metadata) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", m.keys[i], m.values[i])
	}
	b.WriteString("]")
	return b.String()
}

// Field is a named, typed, nullable schema member with metadata.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata
}

// WithName returns a copy of the field renamed to name.
func (f Field) WithName(name string) Field {
	f.Name = name
	return f
}

// WithNullable returns a copy of the field with nullability set.
func (f Field) WithNullable(nullable bool) Field {
	f.Nullable = nullable
	return f
}

// WithMetadata returns a copy of the field carrying m.
func (f Field) WithMetadata(m Metadata) Field {
	f.Metadata = m
	return f
}

// Equal reports whether the fields have the same name, type, nullability,
// and metadata pairs.
func (f Field) Equal(o Field) bool {
	return f.Name == o.Name &&
		f.Nullable == o.Nullable &&
		TypeEqual(f.Type, o.Type) &&
		f.Metadata.Equal(o.Metadata)
}

func (f Field) typeAndNullEqual(o Field) bool {
	return f.Nullable == o.Nullable && TypeEqual(f.Type, o.Type)
}

// Contains reports whether f can stand in for o: the types match
// recursively, f is nullable wherever o is, and f's metadata is a superset
// of o's.
func (f Field) Contains(o Field) bool {
	if f.Name != o.Name || !TypeEqual(f.Type, o.Type) {
		return false
	}
	if o.Nullable && !f.Nullable {
		return false
	}
	return f.Metadata.Contains(o.Metadata)
}

func (f Field) String() string {
	var b strings.Builder
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	fmt.Fprintf(&b, "%s: type=%v%s", f.Name, f.Type, nullable)
	return b.String()
}

// Schema is an immutable ordered list of fields plus metadata.
type Schema struct {
	fields []Field
	index  map[string]int
	meta   Metadata
}

// NewSchema builds a schema from fields. A nil metadata means none.
// Duplicate field names are allowed; lookup by name finds the first
// occurrence.
func NewSchema(fields []Field, metadata *Metadata) *Schema {
	sb := SchemaBuilder{}
	for _, f := range fields {
		sb.Append(f)
	}
	if metadata != nil {
		sb.Metadata = *metadata
	}
	return sb.Finish()
}

func (s *Schema) Fields() []Field    { return s.fields }
func (s *Schema) NumFields() int     { return len(s.fields) }
func (s *Schema) Field(i int) Field  { return s.fields[i] }
func (s *Schema) Metadata() Metadata { return s.meta }

// FieldIndex returns the position of the first field named name, or -1.
func (s *Schema) FieldIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		return -1
	}
	return i
}

func (s *Schema) HasField(name string) bool { return s.FieldIndex(name) >= 0 }

// HasDuplicateNames reports whether two fields share a name. Readers
// tolerate such schemas; callers may want to warn.
func (s *Schema) HasDuplicateNames() bool {
	return len(s.index) != len(s.fields)
}

// Equal reports whether the schemas have equal fields. Metadata is compared
// modulo ordering.
func (s *Schema) Equal(o *Schema) bool {
	switch {
	case s == o:
		return true
	case s == nil || o == nil:
		return false
	case len(s.fields) != len(o.fields):
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return s.meta.Equal(o.meta)
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("schema:\n  fields: ")
	fmt.Fprintf(&b, "%d\n", len(s.fields))
	for _, f := range s.fields {
		fmt.Fprintf(&b, "    - %s\n", f)
	}
	if s.meta.Len() > 0 {
		fmt.Fprintf(&b, "  metadata: %v\n", s.meta)
	}
	return b.String()
}

// SchemaBuilder accumulates fields; Finish computes the name index and
// yields the immutable schema.
type SchemaBuilder struct {
	Metadata Metadata

	fields []Field
}

func (b *SchemaBuilder) Append(f Field) *SchemaBuilder {
	if f.Type == nil {
		panic("arrow: nil field type")
	}
	b.fields = append(b.fields, f)
	return b
}

func (b *SchemaBuilder) Finish() *Schema {
	s := &Schema{
		fields: make([]Field, len(b.fields)),
		index:  make(map[string]int, len(b.fields)),
		meta:   b.Metadata,
	}
	copy(s.fields, b.fields)
	for i, f := range s.fields {
		if _, dup := s.index[f.Name]; !dup {
			s.index[f.Name] = i
		}
	}
	return s
}
