package patch

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("patch: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Fingerprint hashes a patch set document. Documents that differ only in
// whitespace or object key order hash the same.
func Fingerprint(doc string) (string, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", wrapError(CodeMalformedDocument, err, "fingerprinting patch document")
	}
	data, err := cborEncMode.Marshal(canonicalNumbers(v))
	if err != nil {
		return "", wrapError(CodeSerialization, err, "encoding patch document")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i
			}
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return u
			}
		}
		f, _ := strconv.ParseFloat(s, 64)
		return f
	case []any:
		for i := range x {
			x[i] = canonicalNumbers(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = canonicalNumbers(x[k])
		}
		return x
	}
	return v
}
