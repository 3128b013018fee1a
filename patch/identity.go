package patch

import "strings"

// MethodIdentity names a method independent of any live handle. It is the
// persisted half of a patch and stays stable across runs as long as the
// class and selector keep their names.
type MethodIdentity struct {
	Owner       string
	Selector    string
	ClassMethod bool
}

// NewIdentity builds the identity for owner's selector.
func NewIdentity(owner, selector string, classMethod bool) MethodIdentity {
	return MethodIdentity{Owner: owner, Selector: selector, ClassMethod: classMethod}
}

// Key renders the identity as -[Owner selector] or +[Owner selector].
func (id MethodIdentity) Key() string {
	marker := "-"
	if id.ClassMethod {
		marker = "+"
	}
	return marker + "[" + id.Owner + " " + id.Selector + "]"
}

func (id MethodIdentity) String() string {
	return id.Key()
}

// Valid reports whether both names are usable in a key.
func (id MethodIdentity) Valid() bool {
	return validName(id.Owner) && validName(id.Selector)
}

func validName(s string) bool {
	return s != "" && !strings.ContainsAny(s, " []\t\n")
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (MethodIdentity, error) {
	if len(key) < 5 || (key[0] != '-' && key[0] != '+') || key[1] != '[' || key[len(key)-1] != ']' {
		return MethodIdentity{}, newError(CodeInvalidTarget, "malformed method key %q", key)
	}
	owner, selector, ok := strings.Cut(key[2:len(key)-1], " ")
	id := NewIdentity(owner, selector, key[0] == '+')
	if !ok || !id.Valid() {
		return MethodIdentity{}, newError(CodeInvalidTarget, "malformed method key %q", key)
	}
	return id, nil
}
