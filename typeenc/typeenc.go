// Package typeenc decodes Objective-C style type encodings.
//
// A method's types string is a sequence of encodings, one for the return
// slot followed by one per argument slot (receiver and selector first),
// each optionally followed by a frame offset:
//
//	B16@0:8          BOOL, no explicit arguments
//	v32@0:8@16@24    void, two object arguments
//
// ref - https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html
package typeenc

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the semantic category of a decoded slot.
type Kind int

const (
	Unknown Kind = iota
	Void
	Bool
	Int
	Float
	Double
	Object
	Class
	Selector
	CString
	Struct
	Pointer
)

var kindNames = [...]string{
	Unknown:  "unknown",
	Void:     "void",
	Bool:     "bool",
	Int:      "int",
	Float:    "float",
	Double:   "double",
	Object:   "object",
	Class:    "class",
	Selector: "selector",
	CString:  "cstring",
	Struct:   "struct",
	Pointer:  "pointer",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// qualifiers that may prefix any encoding (const, in, inout, out, bycopy,
// byref, oneway, atomic, complex, vector, gnu register).
const qualifiers = "rnNoORVAj!+"

// Descriptor is one decoded slot.
type Descriptor struct {
	Kind   Kind
	Bits   int  // integer and floating widths
	Signed bool // integers only
	Name   string
	Block  bool // @? object slots
	Const  bool
	Elem   *Descriptor // pointee for Pointer

	// Code is the encoding without qualifiers, Raw the encoding as given.
	Code string
	Raw  string
}

var intCodes = map[byte]struct {
	bits   int
	signed bool
}{
	'c': {8, true},
	'C': {8, false},
	's': {16, true},
	'S': {16, false},
	'i': {32, true},
	'I': {32, false},
	'l': {32, true}, // long is always a 32-bit quantity in the encoding
	'L': {32, false},
	'q': {64, true},
	'Q': {64, false},
}

// Decode decodes a single encoding. It never fails: anything that cannot
// be classified comes back as Unknown with Raw preserved.
func Decode(encoding string) Descriptor {
	typ, rest, err := scanType(encoding)
	if err != nil || skipOffset(rest) != "" {
		return Descriptor{Kind: Unknown, Code: encoding, Raw: encoding}
	}
	d := decodeOne(typ)
	d.Raw = typ
	return d
}

func decodeOne(typ string) Descriptor {
	code := strings.TrimLeft(typ, qualifiers)
	d := Descriptor{
		Kind:  Unknown,
		Const: strings.ContainsRune(typ[:len(typ)-len(code)], 'r'),
		Code:  code,
		Raw:   typ,
	}
	if code == "" {
		return d
	}

	if len(code) == 1 {
		if ic, ok := intCodes[code[0]]; ok {
			d.Kind, d.Bits, d.Signed = Int, ic.bits, ic.signed
			return d
		}
		switch code[0] {
		case 'v':
			d.Kind = Void
		case 'B':
			d.Kind, d.Bits = Bool, 8
		case 'f':
			d.Kind, d.Bits = Float, 32
		case 'd':
			d.Kind, d.Bits = Double, 64
		case '@':
			d.Kind = Object
		case '#':
			d.Kind = Class
		case ':':
			d.Kind = Selector
		case '*':
			d.Kind = CString
		}
		return d
	}

	switch code[0] {
	case '@':
		d.Kind = Object
		switch {
		case strings.HasPrefix(code, `@"`):
			d.Name = strings.Trim(code[1:], `"`)
			// protocol-qualified ids look like @"<NSCopying>"
			if strings.HasPrefix(d.Name, "<") {
				d.Name = ""
			}
		case strings.HasPrefix(code, "@?"):
			d.Block = true
		}
	case '^':
		d.Kind = Pointer
		elem := decodeOne(code[1:])
		d.Elem = &elem
	case '{':
		d.Kind = Struct
		inner := strings.TrimSuffix(code[1:], "}")
		if idx := strings.IndexByte(inner, '='); idx >= 0 {
			inner = inner[:idx]
		}
		if inner != "?" {
			d.Name = inner
		}
	}
	return d
}

// Decodable reports whether values can be built for the slot.
func (d Descriptor) Decodable() bool {
	return d.Kind != Unknown
}

// IsNumeric reports integer, floating and boolean slots.
func (d Descriptor) IsNumeric() bool {
	switch d.Kind {
	case Int, Float, Double, Bool:
		return true
	}
	return false
}

// Encoding returns the encoding the descriptor was decoded from.
func (d Descriptor) Encoding() string {
	return d.Raw
}

// String renders the slot the way a declaration would spell it.
func (d Descriptor) String() string {
	s := d.base()
	if d.Const {
		return "const " + s
	}
	return s
}

var otherNames = map[string]string{
	"D": "long double",
	"t": "int128",
	"T": "unsigned int128",
	"?": "void",
	"%": "NXAtom",
}

func (d Descriptor) base() string {
	switch d.Kind {
	case Void:
		return "void"
	case Bool:
		return "BOOL"
	case Int:
		var name string
		switch d.Bits {
		case 8:
			name = "char"
		case 16:
			name = "short"
		case 32:
			name = "int"
			if d.Code == "l" || d.Code == "L" {
				name = "long"
			}
		default:
			name = "long long"
		}
		if !d.Signed {
			return "unsigned " + name
		}
		return name
	case Float:
		return "float"
	case Double:
		return "double"
	case Object:
		if d.Block {
			return "id /* block */"
		}
		if d.Name != "" {
			return d.Name + " *"
		}
		return "id"
	case Class:
		return "Class"
	case Selector:
		return "SEL"
	case CString:
		return "char *"
	case Pointer:
		if d.Elem == nil || d.Elem.Code == "" {
			return "void *"
		}
		if d.Elem.Code == "?" {
			return "IMP"
		}
		return d.Elem.String() + " *"
	case Struct:
		if d.Name != "" {
			return "struct " + d.Name
		}
		return d.Raw
	}

	if name, ok := otherNames[d.Code]; ok {
		return name
	}
	switch {
	case d.Code == "":
		return "<unknown>"
	case len(d.Code) > 2 && d.Code[0] == '[' && d.Code[len(d.Code)-1] == ']':
		inner := d.Code[1 : len(d.Code)-1]
		n := 0
		for n < len(inner) && isDigit(inner[n]) {
			n++
		}
		return fmt.Sprintf("%s[%s]", decodeOne(orVoid(inner[n:])).String(), inner[:n])
	case len(d.Code) > 2 && d.Code[0] == '(':
		inner := strings.TrimSuffix(d.Code[1:], ")")
		if idx := strings.IndexByte(inner, '='); idx >= 0 {
			inner = inner[:idx]
		}
		if inner == "?" || inner == "" {
			return "union"
		}
		return "union " + inner
	case d.Code[0] == 'b':
		return "unsigned int :" + d.Code[1:]
	}
	return d.Raw
}

func orVoid(s string) string {
	if s == "" {
		return "v"
	}
	return s
}

// Signature is a decoded method types string. Args holds the explicit
// parameters only; the receiver and selector slots are dropped.
type Signature struct {
	Return Descriptor
	Args   []Descriptor
	Raw    string
}

// NumArgs returns the number of explicit parameters.
func (s Signature) NumArgs() int {
	return len(s.Args)
}

// Arg returns the descriptor for explicit parameter i.
func (s Signature) Arg(i int) (Descriptor, bool) {
	if i < 0 || i >= len(s.Args) {
		return Descriptor{}, false
	}
	return s.Args[i], true
}

var (
	ErrEmpty      = errors.New("typeenc: empty type encoding")
	ErrTruncated  = errors.New("typeenc: truncated type encoding")
	ErrUnbalanced = errors.New("typeenc: unbalanced type encoding")
	ErrNoSelf     = errors.New("typeenc: signature is missing receiver and selector slots")
)

// ParseSignature decodes a full method types string.
func ParseSignature(types string) (Signature, error) {
	if types == "" {
		return Signature{}, ErrEmpty
	}

	ret, rest, err := scanType(types)
	if err != nil {
		return Signature{}, fmt.Errorf("return type of %q: %w", types, err)
	}
	rest = skipOffset(rest)

	var slots []Descriptor
	for rest != "" {
		var typ string
		typ, rest, err = scanType(rest)
		if err != nil {
			return Signature{}, fmt.Errorf("argument %d of %q: %w", len(slots), types, err)
		}
		rest = skipOffset(rest)
		d := decodeOne(typ)
		slots = append(slots, d)
	}
	if len(slots) < 2 {
		return Signature{}, fmt.Errorf("%q: %w", types, ErrNoSelf)
	}

	retDesc := decodeOne(ret)
	return Signature{
		Return: retDesc,
		Args:   slots[2:],
		Raw:    types,
	}, nil
}

// DefaultTypes builds an all-object types string for a selector: an id
// return and one id parameter per colon.
func DefaultTypes(selector string) string {
	return "@@:" + strings.Repeat("@", strings.Count(selector, ":"))
}

// scanType splits the first complete encoding off s.
func scanType(s string) (string, string, error) {
	i := 0
	for i < len(s) && strings.IndexByte(qualifiers, s[i]) >= 0 {
		i++
	}
	if i >= len(s) {
		if s == "" {
			return "", "", ErrEmpty
		}
		return "", "", ErrTruncated
	}

	switch c := s[i]; {
	case c == '^':
		_, rest, err := scanType(s[i+1:])
		if err != nil {
			return "", "", err
		}
		return s[:len(s)-len(rest)], rest, nil
	case c == '@':
		j := i + 1
		if j < len(s) && s[j] == '"' {
			end := strings.IndexByte(s[j+1:], '"')
			if end < 0 {
				return "", "", ErrUnbalanced
			}
			j += end + 2
		} else if j < len(s) && s[j] == '?' {
			j++
			if j < len(s) && s[j] == '<' {
				end, err := matchClose(s, j)
				if err != nil {
					return "", "", err
				}
				j = end + 1
			}
		}
		return s[:j], s[j:], nil
	case c == '{' || c == '[' || c == '(':
		end, err := matchClose(s, i)
		if err != nil {
			return "", "", err
		}
		return s[:end+1], s[end+1:], nil
	case c == 'b':
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		return s[:j], s[j:], nil
	case isDigit(c) || c == '"' || c == '}' || c == ']' || c == ')':
		return "", "", fmt.Errorf("%w: unexpected %q", ErrTruncated, c)
	default:
		return s[:i+1], s[i+1:], nil
	}
}

// matchClose returns the index of the bracket closing the one at start.
// Quoted field names inside structs are skipped.
func matchClose(s string, start int) (int, error) {
	depth := 0
	quoted := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if quoted {
			if c == '"' {
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '{', '[', '(', '<':
			depth++
		case '}', ']', ')', '>':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrUnbalanced
}

// skipOffset drops a frame offset (possibly negative) following a slot.
func skipOffset(s string) string {
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimLeft(s, "0123456789")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
