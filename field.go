package swift

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Field is the typed interpretation of one tag's value, governed by a
// pattern triple. There is one concrete Field type for every field
// number; the per-number knowledge lives entirely in the triple looked
// up from a registry, never in subtypes.
type Field struct {
	Name    string
	Value   string
	Pattern PatternTriple
}

// NewField builds a field from a tag, resolving the pattern triple
// from the registry. Fails with ErrFieldNotConfigured when the
// registry does not know the tag name.
func NewField(t Tag, reg *Registry) (*Field, error) {
	pt, ok := reg.Lookup(t.Name)
	if !ok {
		return nil, fmt.Errorf("field %s: %w", t.Name, ErrFieldNotConfigured)
	}
	return &Field{Name: t.Name, Value: t.Value, Pattern: pt}, nil
}

// Components splits the field value per its parser pattern.
func (f *Field) Components() ([]Component, error) {
	return Split(f.Value, f.Pattern.Parser)
}

// Component returns the 1-based nth component. Out-of-range indexes
// and pattern errors yield an absent component; a field read never
// fails hard.
func (f *Field) Component(n int) Component {
	components, err := f.Components()
	if err != nil || n < 1 || n > len(components) {
		return AbsentComponent
	}
	return components[n-1]
}

// ComponentString returns the 1-based nth component's text, with ok
// false when the component is absent.
func (f *Field) ComponentString(n int) (string, bool) {
	c := f.Component(n)
	return c.String(), c.Present()
}

// ComponentNumber returns the 1-based nth component coerced to an
// integer. Coercion failure yields ok false, never an error.
func (f *Field) ComponentNumber(n int) (int64, bool) {
	return f.Component(n).Number()
}

// ComponentLogical returns the 1-based nth component coerced to a
// boolean (Y/N). Coercion failure yields ok false.
func (f *Field) ComponentLogical(n int) (bool, bool) {
	return f.Component(n).Logical()
}

// SetComponent replaces the 1-based nth component and re-joins the
// field value. Unlike reads, writes are checked: writing a value that
// violates the component's declared type is rejected with
// ErrInvalidComponent.
func (f *Field) SetComponent(n int, value string) error {
	components, err := f.Components()
	if err != nil {
		return err
	}
	if n < 1 || n > len(components) {
		return fmt.Errorf("component %d of %q: %w", n, f.Pattern.Parser, ErrInvalidComponent)
	}
	if err := checkComponentType(f.Pattern.Components, n, value); err != nil {
		return err
	}
	components[n-1] = NewComponent(value)
	f.Value = Join(components)
	return nil
}

// SetComponentNumber writes an integer component.
func (f *Field) SetComponentNumber(n int, value int64) error {
	return f.SetComponent(n, strconv.FormatInt(value, 10))
}

// SetComponentLogical writes a boolean component as Y or N.
func (f *Field) SetComponentLogical(n int, value bool) error {
	if value {
		return f.SetComponent(n, LogicalTrue)
	}
	return f.SetComponent(n, LogicalFalse)
}

// checkComponentType enforces the components-pattern type letter for
// a written value. Reads tolerate anything; writes do not.
func checkComponentType(componentsPattern string, n int, value string) error {
	if n > len(componentsPattern) {
		return nil
	}
	switch componentsPattern[n-1] {
	case ComponentNumber:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("component %d value %q is not numeric: %w", n, value, ErrInvalidComponent)
		}
	case ComponentLogical:
		if value != LogicalTrue && value != LogicalFalse {
			return fmt.Errorf("component %d value %q is not Y or N: %w", n, value, ErrInvalidComponent)
		}
	case ComponentCharacter:
		if len(value) > 1 {
			return fmt.Errorf("component %d value %q is not a single character: %w", n, value, ErrInvalidComponent)
		}
	}
	return nil
}

// Validate checks the field value against its validator pattern. A
// field can be splittable yet invalid; the two concerns are
// independent.
func (f *Field) Validate() error {
	if f.Pattern.Validator == "" {
		return nil
	}
	return Validate(f.Value, f.Pattern.Validator)
}

// Tag converts the field back to its wire tag.
func (f *Field) Tag() Tag {
	return Tag{Name: f.Name, Value: f.Value}
}

// Clone creates a copy of the field.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

// LogValue renders the field for structured logs with the value
// truncated, since narrative values can run to hundreds of characters.
func (f *Field) LogValue() slog.Value {
	v := f.Value
	if len(v) > 32 {
		v = v[:32] + "..."
	}
	return slog.GroupValue(
		slog.String("name", f.Name),
		slog.String("value", v),
	)
}
