package content

import (
	"fmt"
	"time"
)

type Kind int

const (
	KindString Kind = iota
	KindText
	KindInt
	KindDate
)

// Field describes one payload attribute of a content type: its JSON name,
// storage column, value kind, and whether it is required on create or may be
// cleared with an explicit null.
type Field struct {
	Name     string
	Column   string
	Kind     Kind
	Required bool
	Nullable bool
	Default  any
}

// Schema parameterizes the generic CRUD engine for one content type. The five
// content types share the operation contract and differ only in their field
// sets and list ordering.
type Schema struct {
	Name     string // route segment, e.g. "events"
	Singular string // human-readable name for error messages
	OrderBy  string
	Fields   []Field
	New      func() Entity
	NewSlice func() any
}

var Events = Schema{
	Name:     "events",
	Singular: "Event",
	OrderBy:  "date desc",
	Fields: []Field{
		{Name: "title", Column: "title", Kind: KindString, Required: true},
		{Name: "description", Column: "description", Kind: KindText, Required: true},
		{Name: "date", Column: "date", Kind: KindDate, Required: true},
		{Name: "time", Column: "time", Kind: KindString, Default: ""},
		{Name: "location", Column: "location", Kind: KindString, Default: ""},
		{Name: "image", Column: "image", Kind: KindString, Nullable: true},
	},
	New:      func() Entity { return &Event{} },
	NewSlice: func() any { return &[]Event{} },
}

var Pages = Schema{
	Name:     "pages",
	Singular: "Page",
	OrderBy:  "created_at desc",
	Fields: []Field{
		{Name: "slug", Column: "slug", Kind: KindString, Required: true},
		{Name: "title", Column: "title", Kind: KindString, Required: true},
		{Name: "content", Column: "content", Kind: KindText, Required: true},
		{Name: "image", Column: "image", Kind: KindString, Nullable: true},
	},
	New:      func() Entity { return &Page{} },
	NewSlice: func() any { return &[]Page{} },
}

var Programs = Schema{
	Name:     "programs",
	Singular: "Program",
	OrderBy:  "sort_order asc",
	Fields: []Field{
		{Name: "title", Column: "title", Kind: KindString, Required: true},
		{Name: "description", Column: "description", Kind: KindText, Required: true},
		{Name: "content", Column: "content", Kind: KindText, Required: true},
		{Name: "icon", Column: "icon", Kind: KindString, Nullable: true},
		{Name: "order", Column: "sort_order", Kind: KindInt, Default: 0},
	},
	New:      func() Entity { return &Program{} },
	NewSlice: func() any { return &[]Program{} },
}

var Resources = Schema{
	Name:     "resources",
	Singular: "Resource",
	OrderBy:  "created_at desc",
	Fields: []Field{
		{Name: "title", Column: "title", Kind: KindString, Required: true},
		{Name: "description", Column: "description", Kind: KindText, Required: true},
		{Name: "category", Column: "category", Kind: KindString, Required: true},
		{Name: "url", Column: "url", Kind: KindString, Nullable: true},
		{Name: "content", Column: "content", Kind: KindText, Nullable: true},
		{Name: "image", Column: "image", Kind: KindString, Nullable: true},
	},
	New:      func() Entity { return &Resource{} },
	NewSlice: func() any { return &[]Resource{} },
}

var Newsletters = Schema{
	Name:     "newsletters",
	Singular: "Newsletter",
	OrderBy:  "created_at desc",
	Fields: []Field{
		{Name: "subject", Column: "subject", Kind: KindString, Required: true},
		{Name: "content", Column: "content", Kind: KindText, Required: true},
		{Name: "sentDate", Column: "sent_date", Kind: KindDate, Nullable: true},
	},
	New:      func() Entity { return &Newsletter{} },
	NewSlice: func() any { return &[]Newsletter{} },
}

// Schemas lists every content type served by the generic CRUD routes.
func Schemas() []Schema {
	return []Schema{Events, Pages, Programs, Resources, Newsletters}
}

// convert coerces a decoded JSON value to the field's storage type.
func (f Field) convert(v any) (any, error) {
	switch f.Kind {
	case KindString, KindText:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{fmt.Sprintf("Invalid value for field %q", f.Name)}
		}
		return s, nil
	case KindInt:
		n, ok := v.(float64)
		if !ok {
			return nil, &ValidationError{fmt.Sprintf("Invalid value for field %q", f.Name)}
		}
		return int(n), nil
	case KindDate:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{fmt.Sprintf("Invalid value for field %q", f.Name)}
		}
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			return ts.UTC(), nil
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, &ValidationError{fmt.Sprintf("Invalid date for field %q", f.Name)}
		}
		return ts.UTC(), nil
	}
	return nil, &ValidationError{fmt.Sprintf("Unknown kind for field %q", f.Name)}
}

// createValues validates a create payload against the schema and returns the
// normalized values keyed by JSON field name. Required fields must be present
// and non-empty; absent optional fields take their type default.
func (s Schema) createValues(payload map[string]any) (map[string]any, error) {
	vals := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, present := payload[f.Name]
		if !present || v == nil || v == "" {
			if f.Required {
				return nil, &ValidationError{"Missing required fields"}
			}
			if f.Default != nil {
				vals[f.Name] = f.Default
			}
			continue
		}
		cv, err := f.convert(v)
		if err != nil {
			return nil, err
		}
		vals[f.Name] = cv
	}
	return vals, nil
}

// patchValues returns the column updates for a partial payload. Absent fields
// are skipped; an explicit null clears a nullable field and rejects a
// non-nullable one.
func (s Schema) patchValues(payload map[string]any) (map[string]any, error) {
	updates := make(map[string]any)
	for _, f := range s.Fields {
		v, present := payload[f.Name]
		if !present {
			continue
		}
		if v == nil {
			if !f.Nullable {
				return nil, &ValidationError{fmt.Sprintf("Field %q cannot be null", f.Name)}
			}
			updates[f.Column] = nil
			continue
		}
		cv, err := f.convert(v)
		if err != nil {
			return nil, err
		}
		updates[f.Column] = cv
	}
	return updates, nil
}
