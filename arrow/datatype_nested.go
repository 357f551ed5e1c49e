// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrow

import (
	"fmt"
	"strings"
)

// ListType holds variable length sequences of one child field behind 32-bit
// offsets.
type ListType struct {
	elem Field
}

// ListOf wraps t in a list whose items are nullable and named "item".
func ListOf(t DataType) *ListType {
	if t == nil {
		panic("arrow: nil list element type")
	}
	return &ListType{elem: Field{Name: "item", Type: t, Nullable: true}}
}

// ListOfField wraps f in a list, keeping the field's name, nullability, and
// metadata on the child.
func ListOfField(f Field) *ListType {
	if f.Type == nil {
		panic("arrow: nil list element type")
	}
	return &ListType{elem: f}
}

func (*ListType) ID() Type            { return LIST }
func (*ListType) Name() string        { return "list" }
func (*ListType) Stride() int         { return 0 }
func (*ListType) CDataFormat() string { return "+l" }
func (t *ListType) Elem() DataType    { return t.elem.Type }
func (t *ListType) ElemField() Field  { return t.elem }
func (t *ListType) String() string    { return "list<" + t.elem.String() + ">" }

// LargeListType is a list with 64-bit offsets. It travels as a type only.
type LargeListType struct {
	elem Field
}

func LargeListOf(t DataType) *LargeListType {
	if t == nil {
		panic("arrow: nil list element type")
	}
	return &LargeListType{elem: Field{Name: "item", Type: t, Nullable: true}}
}

func (*LargeListType) ID() Type            { return LARGE_LIST }
func (*LargeListType) Name() string        { return "large_list" }
func (*LargeListType) Stride() int         { return 0 }
func (*LargeListType) CDataFormat() string { return "+L" }
func (t *LargeListType) Elem() DataType    { return t.elem.Type }
func (t *LargeListType) ElemField() Field  { return t.elem }
func (t *LargeListType) String() string    { return "large_list<" + t.elem.String() + ">" }

// FixedSizeListType holds sequences of exactly n child values per slot, with
// no offsets buffer.
type FixedSizeListType struct {
	n    int32
	elem Field
}

func FixedSizeListOf(n int32, t DataType) *FixedSizeListType {
	if t == nil {
		panic("arrow: nil list element type")
	}
	if n <= 0 {
		panic("arrow: invalid fixed size list length")
	}
	return &FixedSizeListType{n: n, elem: Field{Name: "item", Type: t, Nullable: true}}
}

func (*FixedSizeListType) ID() Type     { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string { return "fixed_size_list" }
func (*FixedSizeListType) Stride() int  { return 0 }
func (t *FixedSizeListType) CDataFormat() string {
	return fmt.Sprintf("+w:%d", t.n)
}
func (t *FixedSizeListType) Len() int32       { return t.n }
func (t *FixedSizeListType) Elem() DataType   { return t.elem.Type }
func (t *FixedSizeListType) ElemField() Field { return t.elem }
func (t *FixedSizeListType) String() string {
	return fmt.Sprintf("fixed_size_list<%s>[%d]", t.elem, t.n)
}

// StructType holds one child array per field.
type StructType struct {
	fields []Field
	index  map[string]int
}

// StructOf builds a struct type from fields. Duplicate names are allowed;
// lookup by name finds the first occurrence.
func StructOf(fs ...Field) *StructType {
	n := len(fs)
	t := &StructType{
		fields: make([]Field, n),
		index:  make(map[string]int, n),
	}
	for i, f := range fs {
		if f.Type == nil {
			panic("arrow: nil struct field type")
		}
		t.fields[i] = f
		if _, dup := t.index[f.Name]; !dup {
			t.index[f.Name] = i
		}
	}
	return t
}

func (*StructType) ID() Type            { return STRUCT }
func (*StructType) Name() string        { return "struct" }
func (*StructType) Stride() int         { return 0 }
func (*StructType) CDataFormat() string { return "+s" }
func (t *StructType) Fields() []Field   { return t.fields }
func (t *StructType) NumFields() int    { return len(t.fields) }
func (t *StructType) Field(i int) Field { return t.fields[i] }

func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

func (t *StructType) FieldIndex(name string) int {
	i, ok := t.index[name]
	if !ok {
		return -1
	}
	return i
}

func (t *StructType) String() string {
	var b strings.Builder
	b.WriteString("struct<")
	for i, f := range t.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteString(">")
	return b.String()
}

// MapType travels as a type only; map arrays are not materialized.
type MapType struct {
	KeysSorted bool
	elem       Field
}

func MapOf(key, item DataType) *MapType {
	if key == nil || item == nil {
		panic("arrow: nil map key or item type")
	}
	entries := Field{Name: "entries", Type: StructOf(
		Field{Name: "key", Type: key},
		Field{Name: "value", Type: item, Nullable: true},
	)}
	return &MapType{elem: entries}
}

func (*MapType) ID() Type            { return MAP }
func (*MapType) Name() string        { return "map" }
func (*MapType) Stride() int         { return 0 }
func (*MapType) CDataFormat() string { return "+m" }
func (t *MapType) ElemField() Field  { return t.elem }
func (t *MapType) String() string {
	st := t.elem.Type.(*StructType)
	return fmt.Sprintf("map<%s, %s>", st.Field(0).Type, st.Field(1).Type)
}

// DictionaryType travels as a type only; dictionary arrays are not
// materialized. Equality ignores dictionary ordering.
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
	Ordered   bool
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }
func (t *DictionaryType) Stride() int {
	return t.IndexType.Stride()
}
func (t *DictionaryType) CDataFormat() string {
	return t.IndexType.CDataFormat()
}
func (t *DictionaryType) String() string {
	return fmt.Sprintf("dictionary<values=%s, indices=%s>", t.ValueType, t.IndexType)
}

// RunEndEncodedType travels as a type only.
type RunEndEncodedType struct {
	RunEnds Field
	Values  Field
}

func RunEndEncodedOf(runEnds, values DataType) *RunEndEncodedType {
	return &RunEndEncodedType{
		RunEnds: Field{Name: "run_ends", Type: runEnds},
		Values:  Field{Name: "values", Type: values, Nullable: true},
	}
}

func (*RunEndEncodedType) ID() Type            { return RUN_END_ENCODED }
func (*RunEndEncodedType) Name() string        { return "run_end_encoded" }
func (*RunEndEncodedType) Stride() int         { return 0 }
func (*RunEndEncodedType) CDataFormat() string { return "+r" }
func (t *RunEndEncodedType) String() string {
	return fmt.Sprintf("run_end_encoded<run_ends=%s, values=%s>", t.RunEnds.Type, t.Values.Type)
}
