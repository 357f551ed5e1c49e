// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	m := NewMetadata([]string{"k1", "k2"}, []string{"v1", "v2"})
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 0, m.FindKey("k1"))
	assert.Equal(t, -1, m.FindKey("missing"))

	// equality ignores pair order
	o := NewMetadata([]string{"k2", "k1"}, []string{"v2", "v1"})
	assert.True(t, m.Equal(o))

	sub := NewMetadata([]string{"k2"}, []string{"v2"})
	assert.True(t, m.Contains(sub))
	assert.False(t, sub.Contains(m))

	fromMap := MetadataFrom(map[string]string{"k2": "v2", "k1": "v1"})
	assert.Empty(t, cmp.Diff(m.Keys(), fromMap.Keys()))
}

func TestFieldMutators(t *testing.T) {
	f := Field{Name: "a", Type: PrimitiveTypes.Int32}
	g := f.WithName("b").WithNullable(true)
	assert.Equal(t, "a", f.Name)
	assert.False(t, f.Nullable)
	assert.Equal(t, "b", g.Name)
	assert.True(t, g.Nullable)

	m := NewMetadata([]string{"k"}, []string{"v"})
	h := f.WithMetadata(m)
	assert.Equal(t, 0, f.Metadata.Len())
	assert.Equal(t, 1, h.Metadata.Len())
}

func TestFieldContains(t *testing.T) {
	base := Field{
		Name:     "a",
		Type:     PrimitiveTypes.Int32,
		Nullable: true,
		Metadata: NewMetadata([]string{"k1", "k2"}, []string{"v1", "v2"}),
	}
	sub := Field{
		Name:     "a",
		Type:     PrimitiveTypes.Int32,
		Nullable: true,
		Metadata: NewMetadata([]string{"k1"}, []string{"v1"}),
	}
	assert.True(t, base.Contains(sub))
	assert.False(t, sub.Contains(base))

	// a non-nullable field cannot stand in for a nullable one
	hard := sub.WithNullable(false)
	assert.False(t, hard.Contains(sub))
	assert.True(t, sub.Contains(hard))
}

func TestSchemaBuilder(t *testing.T) {
	sb := SchemaBuilder{}
	sb.Append(Field{Name: "a", Type: PrimitiveTypes.Int32})
	sb.Append(Field{Name: "b", Type: BinaryTypes.String})
	sb.Append(Field{Name: "a", Type: PrimitiveTypes.Int64})
	s := sb.Finish()

	assert.Equal(t, 3, s.NumFields())
	// duplicate names resolve to the first occurrence
	assert.Equal(t, 0, s.FieldIndex("a"))
	assert.Equal(t, 1, s.FieldIndex("b"))
	assert.Equal(t, -1, s.FieldIndex("c"))
	assert.True(t, s.HasDuplicateNames())
}

func TestSchemaEqual(t *testing.T) {
	m1 := NewMetadata([]string{"k1", "k2"}, []string{"v1", "v2"})
	m2 := NewMetadata([]string{"k2", "k1"}, []string{"v2", "v1"})
	a := NewSchema([]Field{{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}}, &m1)
	b := NewSchema([]Field{{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}}, &m2)
	c := NewSchema([]Field{{Name: "a", Type: PrimitiveTypes.Int64, Nullable: true}}, &m1)

	// equality holds modulo metadata ordering
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
