package swift

import (
	"fmt"
	"strings"
	"sync"
)

// The validator pattern is the structural grammar of a field value,
// e.g. "1!a6!n" (exactly 1 alphabetic then exactly 6 digits) or "16x"
// (up to 16 characters of the x character set). It is compiled once
// per distinct pattern and cached; validation is a separate concern
// from component extraction and never aborts it.

// validatorToken is one compiled element of a validator pattern.
type validatorToken struct {
	// charset token: up to (or, when fixed, exactly) length characters
	// of the named character set.
	charset byte
	length  int
	fixed   bool

	// literal token: the exact text must appear next. Set when
	// charset is 0.
	literal string

	// optional tokens are skipped without error once input is
	// exhausted.
	optional bool
}

type compiledValidator struct {
	pattern string
	tokens  []validatorToken
}

// validatorCache holds compiled patterns. Compilation is cheap but
// the same few hundred patterns recur across every message, so the
// cache is shared and guarded for concurrent decoders.
var validatorCache = struct {
	sync.RWMutex
	m map[string]*compiledValidator
}{m: make(map[string]*compiledValidator)}

// charsetMember reports whether b belongs to the named SWIFT
// character set.
func charsetMember(set, b byte) bool {
	switch set {
	case 'n': // digits
		return isDigit(b)
	case 'a': // uppercase letters
		return b >= 'A' && b <= 'Z'
	case 'A': // letters, both cases
		return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
	case 'c': // uppercase alphanumeric
		return isDigit(b) || (b >= 'A' && b <= 'Z')
	case 'B': // alphanumeric, both cases
		return isAlphanumeric(b)
	case 'd': // decimal amount: digits with a comma decimal mark
		return isDigit(b) || b == ','
	case 'e': // blank
		return b == ' '
	case 'x': // printable FIN text set
		return isAlphanumeric(b) ||
			strings.IndexByte("/-?:().,'+ \r\n", b) >= 0
	case 'y': // uppercase EDIFACT level A set
		return isDigit(b) || (b >= 'A' && b <= 'Z') ||
			strings.IndexByte(" .,-()/='+:?!\"%&*<>;", b) >= 0
	case 'z': // extended information set
		return isAlphanumeric(b) ||
			strings.IndexByte("/-?:().,'+ \r\n=!\"%&*<>;{@#_", b) >= 0
	}
	return false
}

func validCharsetLetter(b byte) bool {
	switch b {
	case 'n', 'a', 'A', 'c', 'B', 'd', 'e', 'x', 'y', 'z':
		return true
	}
	return false
}

// compileValidator parses a validator pattern into tokens. Grammar,
// repeated left to right:
//
//	[count]["!"]charset   e.g. "16x", "6!n", "1a"
//	"[" ... "]"           optional group
//	"<NAME>"              named special, e.g. <BOOL> (Y or N)
//	any other character   literal, matched verbatim
//
// A missing count means length 1.
func compileValidator(pattern string) (*compiledValidator, error) {
	validatorCache.RLock()
	cv, ok := validatorCache.m[pattern]
	validatorCache.RUnlock()
	if ok {
		return cv, nil
	}

	var tokens []validatorToken
	optionalDepth := 0

	i := 0
	for i < len(pattern) {
		b := pattern[i]

		switch {
		case b == '[':
			optionalDepth++
			i++

		case b == ']':
			if optionalDepth == 0 {
				return nil, &ValidationError{
					Pattern:  pattern,
					Position: i,
					Message:  "unbalanced optional group",
				}
			}
			optionalDepth--
			i++

		case b == '<':
			end := strings.IndexByte(pattern[i:], '>')
			if end < 0 {
				return nil, &ValidationError{
					Pattern:  pattern,
					Position: i,
					Message:  "unterminated special token",
				}
			}
			name := pattern[i+1 : i+end]
			tok, err := specialToken(name)
			if err != nil {
				return nil, &ValidationError{
					Pattern:  pattern,
					Position: i,
					Message:  err.Error(),
				}
			}
			tok.optional = optionalDepth > 0
			tokens = append(tokens, tok)
			i += end + 1

		case isDigit(b):
			length := 0
			for i < len(pattern) && isDigit(pattern[i]) {
				length = length*10 + int(pattern[i]-'0')
				i++
			}
			fixed := false
			if i < len(pattern) && pattern[i] == '!' {
				fixed = true
				i++
			}
			if i >= len(pattern) || !validCharsetLetter(pattern[i]) {
				return nil, &ValidationError{
					Pattern:  pattern,
					Position: i,
					Message:  "count without a character set letter",
				}
			}
			tokens = append(tokens, validatorToken{
				charset:  pattern[i],
				length:   length,
				fixed:    fixed,
				optional: optionalDepth > 0,
			})
			i++

		case validCharsetLetter(b):
			tokens = append(tokens, validatorToken{
				charset:  b,
				length:   1,
				optional: optionalDepth > 0,
			})
			i++

		default:
			tokens = append(tokens, validatorToken{
				literal:  string(b),
				optional: optionalDepth > 0,
			})
			i++
		}
	}
	if optionalDepth != 0 {
		return nil, &ValidationError{
			Pattern:  pattern,
			Position: len(pattern),
			Message:  "unbalanced optional group",
		}
	}

	cv = &compiledValidator{pattern: pattern, tokens: tokens}
	validatorCache.Lock()
	validatorCache.m[pattern] = cv
	validatorCache.Unlock()
	return cv, nil
}

// specialToken resolves a <NAME> token to its matcher. <BOOL> matches
// exactly one of Y or N.
func specialToken(name string) (validatorToken, error) {
	switch name {
	case "BOOL":
		// Compiled as a fixed 1-character uppercase letter; the Y/N
		// restriction is enforced in validateToken.
		return validatorToken{charset: boolCharset, length: 1, fixed: true}, nil
	}
	return validatorToken{}, fmt.Errorf("unknown special token <%s>", name)
}

// boolCharset is an internal charset letter for <BOOL>; it never
// appears in user-written patterns.
const boolCharset = '\x01'

// Validate checks a raw value against a validator pattern. It reports
// the first structural violation; a value can fail validation while
// still being splittable into components.
func Validate(value, pattern string) error {
	cv, err := compileValidator(pattern)
	if err != nil {
		return err
	}

	pos := 0
	for _, tok := range cv.tokens {
		if pos >= len(value) && tok.optional {
			continue
		}

		if tok.literal != "" {
			if !strings.HasPrefix(value[pos:], tok.literal) {
				return &ValidationError{
					Pattern:  pattern,
					Position: pos,
					Message:  fmt.Sprintf("expected literal %q", tok.literal),
				}
			}
			pos += len(tok.literal)
			continue
		}

		consumed := 0
		for pos < len(value) && consumed < tok.length && tokenMember(tok, value[pos]) {
			pos++
			consumed++
		}
		if tok.fixed && consumed != tok.length {
			return &ValidationError{
				Pattern:  pattern,
				Position: pos,
				Message: fmt.Sprintf("expected exactly %d characters of set %q, found %d",
					tok.length, charsetName(tok.charset), consumed),
			}
		}
		if !tok.fixed && consumed == 0 && tok.length > 0 && !tok.optional && pos >= len(value) {
			return &ValidationError{
				Pattern:  pattern,
				Position: pos,
				Message:  fmt.Sprintf("input exhausted before set %q", charsetName(tok.charset)),
			}
		}
	}

	if pos != len(value) {
		return &ValidationError{
			Pattern:  pattern,
			Position: pos,
			Message:  "trailing characters after pattern",
		}
	}
	return nil
}

func tokenMember(tok validatorToken, b byte) bool {
	if tok.charset == boolCharset {
		return b == 'Y' || b == 'N'
	}
	return charsetMember(tok.charset, b)
}

func charsetName(set byte) string {
	if set == boolCharset {
		return "BOOL"
	}
	return string(set)
}
