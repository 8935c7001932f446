package lti

import (
	"net/url"
	"sort"
	"strings"
)

// ParseQuery decodes a query-string shaped input (key1=value1&key2=value2...)
// into a parameter set. Names and values are percent-decoded and a "+" in the
// input decodes to a space, per standard query-string convention. Parsing is
// tolerant: a fragment whose name or value cannot be decoded is skipped, and
// a fragment without "=" yields an empty value. Empty input parses to an
// empty set.
func ParseQuery(query string) Params {
	params := make(Params)
	if query == "" {
		return params
	}

	for _, field := range strings.Split(query, "&") {
		if field == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(field, "=")

		name, err := url.QueryUnescape(rawName)
		if err != nil || name == "" {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		params.Set(name, value)
	}

	return params
}

// EncodeQuery serializes a parameter set back into query-string form. Unlike
// ParseQuery's input convention, spaces are encoded as %20, never "+", so the
// output can be embedded in a signature base string unchanged. Pairs are
// ordered by encoded name then encoded value, making the output deterministic.
func EncodeQuery(params Params) string {
	pairs := make([]pair, 0, len(params))
	for name, value := range params {
		pairs = append(pairs, pair{escape(name), escape(value)})
	}
	sortEncodedPairs(pairs)

	encoded := make([]string, len(pairs))
	for i, p := range pairs {
		encoded[i] = p.name + "=" + p.value
	}
	return strings.Join(encoded, "&")
}

// pair is one already-escaped name/value entry of the canonical multiset.
type pair struct {
	name  string
	value string
}

// sortEncodedPairs orders pairs ascending by encoded name, byte-wise, with
// the encoded value breaking ties between equal names.
func sortEncodedPairs(pairs []pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].name != pairs[j].name {
			return pairs[i].name < pairs[j].name
		}
		return pairs[i].value < pairs[j].value
	})
}

// escape percent-encodes s per RFC3986: unreserved characters pass through,
// everything else becomes %XX with uppercase hex digits and a space becomes
// %20.
func escape(s string) string {
	t := make([]byte, 0, 3*len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isEscapable(c) {
			t = append(t, '%')
			t = append(t, "0123456789ABCDEF"[c>>4])
			t = append(t, "0123456789ABCDEF"[c&15])
		} else {
			t = append(t, s[i])
		}
	}
	return string(t)
}

func isEscapable(b byte) bool {
	return !('A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' || b == '-' || b == '.' || b == '_' || b == '~')
}
