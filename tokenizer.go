package swift

import "strings"

// blockToken is one "{N:payload}" unit cut out of the raw message.
// The payload excludes the block marker, the closing brace and, for
// the text block, the "-}" terminator.
type blockToken struct {
	number  int
	payload string
}

// tokenize splits a raw FIN message into its block payloads, in the
// order they appear on the wire.
//
// Blocks 1, 2, 3 and 5 are delimited by brace-depth counting; their
// payloads never contain stray braces (blocks 3 and 5 contain only
// well-formed "{name:value}" sub-blocks). The text block is the
// exception: its tag values are free text and may contain literal
// braces, so depth counting is unsafe and the block instead ends at
// the "-}" terminator immediately following a line break.
//
// In strict mode a block number outside 1-5 fails with
// ErrUnknownBlock and a block with no closing delimiter fails with
// ErrUnterminatedBlock. In lenient mode unknown blocks are skipped
// and an unterminated block consumes the rest of the input.
func tokenize(raw string, lenient bool) ([]blockToken, error) {
	var tokens []blockToken

	i := 0
	for i < len(raw) {
		if raw[i] != '{' {
			// Inter-block noise (line breaks, padding) is ignored.
			i++
			continue
		}

		// Read the block number: digits up to the next ':'.
		j := i + 1
		number := 0
		digits := 0
		for j < len(raw) && isDigit(raw[j]) {
			number = number*10 + int(raw[j]-'0')
			digits++
			j++
		}
		if digits == 0 || j >= len(raw) || raw[j] != ':' {
			if lenient {
				i++
				continue
			}
			return nil, &BlockError{Block: number, Err: ErrUnknownBlock}
		}
		if number < 1 || number > 5 {
			if lenient {
				end := matchingBrace(raw, i)
				if end < 0 {
					return tokens, nil
				}
				i = end + 1
				continue
			}
			return nil, &BlockError{Block: number, Err: ErrUnknownBlock}
		}

		start := j + 1 // first payload character, after the ':'

		if number == BlockText {
			payloadEnd, blockEnd := findBlock4End(raw, start)
			if payloadEnd < 0 {
				if !lenient {
					return nil, &BlockError{Block: number, Err: ErrUnterminatedBlock}
				}
				tokens = append(tokens, blockToken{number: number, payload: raw[start:]})
				return tokens, nil
			}
			tokens = append(tokens, blockToken{number: number, payload: raw[start:payloadEnd]})
			i = blockEnd
			continue
		}

		end := matchingBrace(raw, i)
		if end < 0 {
			if !lenient {
				return nil, &BlockError{Block: number, Err: ErrUnterminatedBlock}
			}
			tokens = append(tokens, blockToken{number: number, payload: raw[start:]})
			return tokens, nil
		}
		tokens = append(tokens, blockToken{number: number, payload: raw[start:end]})
		i = end + 1
	}

	return tokens, nil
}

// matchingBrace returns the index of the '}' closing the '{' at open,
// by depth counting, or -1 when the block never closes.
func matchingBrace(raw string, open int) int {
	depth := 0
	for k := open; k < len(raw); k++ {
		switch raw[k] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}

// findBlock4End locates the text block terminator: the literal "-}"
// immediately following a line break, scanned linearly from the
// block's start. It returns the end of the payload (excluding the
// line break that precedes the terminator) and the index just past
// the closing brace. Both are -1 when no terminator exists.
//
// The scan assumes "-}" after a line break only ever appears as an
// intentional terminator; a tag value containing that exact sequence
// at the start of a line is indistinguishable from the end of the
// block.
func findBlock4End(raw string, start int) (payloadEnd, blockEnd int) {
	idx := strings.Index(raw[start:], "\n-}")
	if idx < 0 {
		return -1, -1
	}
	lf := start + idx
	payloadEnd = lf
	if payloadEnd > start && raw[payloadEnd-1] == '\r' {
		payloadEnd--
	}
	return payloadEnd, lf + 3
}

// splitSubBlocks parses the payload of a user header or trailer
// block: a run of "{name:value}" sub-blocks, depth-counted because
// values here are themselves structured, never free text.
func splitSubBlocks(payload string, blockNumber int, lenient bool) (*TagSequence, error) {
	seq := &TagSequence{}

	i := 0
	for i < len(payload) {
		if payload[i] != '{' {
			i++
			continue
		}
		end := matchingBrace(payload, i)
		if end < 0 {
			if !lenient {
				return nil, &BlockError{Block: blockNumber, Err: ErrUnterminatedBlock}
			}
			end = len(payload)
		}
		inner := payload[i+1 : end]
		if colon := strings.IndexByte(inner, ':'); colon >= 0 {
			seq.Add(inner[:colon], inner[colon+1:])
		} else if inner != "" {
			// A sub-block without a colon carries a bare name.
			seq.Add(inner, "")
		}
		i = end + 1
	}

	return seq, nil
}

// splitBlock4Tags splits the raw text-block body into tags. A tag
// starts on a line beginning with ":name:" where the name is 2-3
// alphanumeric characters optionally followed by one uppercase letter
// option. The value runs up to, but excluding, the line that begins
// the next tag or the end of the body; embedded line breaks inside a
// value are preserved verbatim (multi-line narrative values are
// legal).
//
// A line that starts with ':' but does not match the tag grammar
// fails with ErrMalformedTagLine in strict mode; in lenient mode it
// is folded into the preceding tag's value as a continuation line, or
// dropped when no tag is open yet.
func splitBlock4Tags(body string, lenient bool) (*TagSequence, error) {
	seq := &TagSequence{}

	// Open tag state: name and the start offset of its value.
	var openName string
	valueStart := -1

	closeTag := func(lineStart int) {
		if valueStart < 0 {
			return
		}
		end := lineStart
		// Strip the line break separating the value from the next line.
		if end > valueStart && body[end-1] == '\n' {
			end--
			if end > valueStart && body[end-1] == '\r' {
				end--
			}
		}
		seq.Add(openName, body[valueStart:end])
		valueStart = -1
	}

	lineStart := 0
	for lineStart <= len(body) {
		lineEnd := len(body)
		if idx := strings.IndexByte(body[lineStart:], '\n'); idx >= 0 {
			lineEnd = lineStart + idx + 1
		}
		line := body[lineStart:lineEnd]
		trimmed := strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(trimmed, ":") {
			name, rest, ok := matchTagMarker(trimmed)
			if ok {
				closeTag(lineStart)
				openName = name
				valueStart = lineStart + len(trimmed) - len(rest)
			} else if !lenient {
				return nil, &TagLineError{Line: trimmed, Err: ErrMalformedTagLine}
			}
			// Lenient: the line stays part of the open value, or is
			// dropped when nothing is open.
		}

		if lineEnd == len(body) {
			break
		}
		lineStart = lineEnd
	}
	closeTag(len(body))

	return seq, nil
}

// matchTagMarker matches ":name:" at the start of a line and returns
// the tag name and the remainder of the line after the second colon.
func matchTagMarker(line string) (name, rest string, ok bool) {
	if len(line) < 2 || line[0] != ':' {
		return "", "", false
	}
	second := strings.IndexByte(line[1:], ':')
	if second < 0 {
		return "", "", false
	}
	name = line[1 : 1+second]
	if !validTagName(name) {
		return "", "", false
	}
	return name, line[2+second:], true
}
