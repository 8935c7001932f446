// Package jsonld serializes resource descriptions with an injected JSON-LD
// context. It is a companion to the signing package for describing LTI
// resources such as outcome results; the signing protocol itself neither
// depends on nor produces this format.
package jsonld

import (
	"encoding/json"
	"fmt"
)

// Context describes how the short field names of a serialized object map to
// full identifiers. External is an optional URI of a published context
// document; Terms maps additional short terms to their full identifiers.
type Context struct {
	External string
	Terms    map[string]string
}

// Marshal serializes v as a JSON object with @context, @id and @type
// injected as its lexicographically first fields. An empty id, type or
// context is omitted. v must serialize to a JSON object.
func Marshal(v interface{}, ctx Context, id, typ string) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("jsonld: value must serialize to an object: %w", err)
	}

	if contextValue := ctx.value(); contextValue != nil {
		fields["@context"] = mustRaw(contextValue)
	}
	if id != "" {
		fields["@id"] = mustRaw(id)
	}
	if typ != "" {
		fields["@type"] = mustRaw(typ)
	}

	// Map keys marshal in sorted order, which puts the @-prefixed fields
	// ahead of ordinary letter-named fields.
	return json.Marshal(fields)
}

// value renders the context as its JSON-LD form: the external URI alone, the
// term map alone, or a composite array of both. A fully empty context is nil.
func (c Context) value() interface{} {
	switch {
	case c.External == "" && len(c.Terms) == 0:
		return nil
	case len(c.Terms) == 0:
		return c.External
	case c.External == "":
		return c.Terms
	default:
		return []interface{}{c.External, c.Terms}
	}
}

func mustRaw(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		// Strings and string maps cannot fail to marshal.
		panic(err)
	}
	return raw
}
