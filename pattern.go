package swift

import "strconv"

// Component is one typed slice of a field's raw value. Absence and
// emptiness are distinct: a pattern applied to a value shorter than it
// expects yields absent trailing components, while a present component
// may legitimately hold "". Callers branch on Present before reading.
type Component struct {
	value   string
	present bool
}

// NewComponent creates a present component holding value.
func NewComponent(value string) Component {
	return Component{value: value, present: true}
}

// AbsentComponent is the zero component: not present, no value.
var AbsentComponent = Component{}

// Present reports whether the component was extracted at all.
func (c Component) Present() bool {
	return c.present
}

// String returns the component's raw text, "" when absent.
func (c Component) String() string {
	return c.value
}

// Number coerces the component to a base-10 integer. Coercion failure
// and absence both report ok false, never an error: a single bad
// component must not invalidate an otherwise readable field.
func (c Component) Number() (int64, bool) {
	if !c.present {
		return 0, false
	}
	n, err := strconv.ParseInt(c.value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Logical coerces the component to a boolean: "Y" is true, "N" is
// false, anything else (and absence) reports ok false.
func (c Component) Logical() (bool, bool) {
	if !c.present {
		return false, false
	}
	switch c.value {
	case LogicalTrue:
		return true, true
	case LogicalFalse:
		return false, true
	}
	return false, false
}

// extractor consumes a prefix of the remaining raw value and returns
// the component text plus the unconsumed suffix.
type extractor func(remaining string) (component, rest string)

// extractors maps each parser-pattern letter to its extraction rule.
// A table keeps the engine open to new letters without touching the
// split loop.
var extractors = map[byte]extractor{
	'S': extractAlpha,
	'N': extractNumeric,
	'c': extractAlpha,
	'L': extractAlpha,
}

// extractAlpha takes the longest leading run of non-numeric
// characters.
func extractAlpha(remaining string) (string, string) {
	i := 0
	for i < len(remaining) && !isDigit(remaining[i]) {
		i++
	}
	return remaining[:i], remaining[i:]
}

// extractNumeric takes the leading run of numeric characters.
func extractNumeric(remaining string) (string, string) {
	i := 0
	for i < len(remaining) && isDigit(remaining[i]) {
		i++
	}
	return remaining[:i], remaining[i:]
}

// Split decomposes a raw field value into components by consuming the
// parser pattern left to right. Each letter's rule applies to the
// still-unconsumed suffix; the final letter keeps everything that
// remains, so no input is ever dropped. Pattern letters left over once
// the input is exhausted produce absent components.
//
// The only error is an unrecognized pattern letter; short or irregular
// input is never an error here.
func Split(rawValue, parserPattern string) ([]Component, error) {
	components := make([]Component, 0, len(parserPattern))
	remaining := rawValue

	for i := 0; i < len(parserPattern); i++ {
		letter := parserPattern[i]
		extract, ok := extractors[letter]
		if !ok {
			return nil, &ValidationError{
				Pattern:  parserPattern,
				Position: i,
				Message:  "unrecognized parser pattern letter " + strconv.QuoteRune(rune(letter)),
			}
		}

		if remaining == "" && i > 0 {
			// Exhausted input: the rest of the pattern is absent.
			components = append(components, AbsentComponent)
			continue
		}

		var text string
		if i == len(parserPattern)-1 {
			// The last component absorbs the tail verbatim, which is
			// what makes Join(Split(v)) == v hold.
			text, remaining = remaining, ""
		} else {
			text, remaining = extract(remaining)
		}
		components = append(components, NewComponent(text))
	}

	return components, nil
}

// Join reassembles a raw value from components: present components
// concatenate in declared order with no separators (boundaries are
// implied by type transitions), absent components contribute nothing.
func Join(components []Component) string {
	buf := builderPool.Get()
	defer builderPool.Put(buf)

	for _, c := range components {
		if c.present {
			buf.WriteString(c.value)
		}
	}
	return buf.String()
}
