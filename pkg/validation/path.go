package validation

import (
	"strings"
	"unicode"
)

// Path builds the property key for a chain of field accesses, e.g.
// Path("Address", "City") returns "Address.City". A segment may itself be a
// dotted chain. Every link must be a plain field name; indexers, calls and
// other expressions are rejected with ErrInvalidKeyExpression.
func Path(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", &InvalidKeyExpressionError{Reason: "empty path"}
	}

	links := make([]string, 0, len(segments))
	for _, seg := range segments {
		for _, link := range strings.Split(seg, ".") {
			if err := checkLink(link); err != nil {
				return "", err
			}
			links = append(links, link)
		}
	}
	return strings.Join(links, "."), nil
}

// MustPath is like Path but panics on an invalid expression.
// Intended for rule wiring with literal field names.
func MustPath(segments ...string) string {
	p, err := Path(segments...)
	if err != nil {
		panic(err)
	}
	return p
}

func checkLink(link string) error {
	switch {
	case link == "":
		return &InvalidKeyExpressionError{Expression: link, Reason: "empty link"}
	case strings.ContainsAny(link, "[]"):
		return &InvalidKeyExpressionError{Expression: link, Reason: "indexer is not a field access"}
	case strings.ContainsAny(link, "()"):
		return &InvalidKeyExpressionError{Expression: link, Reason: "call is not a field access"}
	}
	for i, r := range link {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return &InvalidKeyExpressionError{Expression: link, Reason: "not a field name"}
	}
	return nil
}
