package render

import (
	"fmt"
	"strings"
)

// Context maps template fields to their display values.
type Context map[Field]string

// Render substitutes every `{{field}}` token with its context value.
// Replacement is global, case-sensitive and literal; no HTML escaping is
// performed since all values come from the provider and our own
// formatters. Tokens without a context entry stay in the output
// verbatim.
func Render(templateText string, ctx Context) string {
	out := templateText
	for field, value := range ctx {
		out = strings.ReplaceAll(out, "{{"+string(field)+"}}", value)
	}
	return out
}

// Validate checks that a context carries exactly the known field set, so
// a missing or extraneous field is caught before rendering instead of
// leaking a literal token into the page.
func (c Context) Validate() error {
	for field := range c {
		if _, ok := knownFields[field]; !ok {
			return fmt.Errorf("unknown template field %q", field)
		}
	}
	for field := range knownFields {
		if _, ok := c[field]; !ok {
			return fmt.Errorf("missing template field %q", field)
		}
	}
	return nil
}
