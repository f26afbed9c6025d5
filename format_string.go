// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekastr"
)

type (
	/*
	FormatString is one parsed translation template:
	a text with named placeholders, like "Hello {user}!".

	A placeholder is "{" + identifier + "}".
	Literal braces are written doubled: "{{" renders as "{",
	"}}" renders as "}".

	FormatString is parsed exactly once, at the load of a translation
	source. Rendering (ReplaceWith) only walks the prepared tokens
	and never re-scans the template text.
	*/
	FormatString struct {
		raw    string
		tokens []formatToken
	}

	/*
	formatToken is one chunk of a parsed FormatString:
	either a literal text (placeholder == false, value is the text as is)
	or a placeholder (placeholder == true, value is the placeholder's name).
	*/
	formatToken struct {
		value       string
		placeholder bool
	}
)

/*
ParseFormatString parses passed raw as a translation template
and returns its prepared, render-ready form.

Returns an error if the template is malformed:
an unterminated "{", a bare "}" (not a part of "}}"),
or a placeholder whose name isn't a valid identifier.
*/
func ParseFormatString(raw string) (*FormatString, *ekaerr.Error) {
	const s = "Failed to parse a translation template. "

	var (
		tokens  []formatToken
		literal strings.Builder
	)

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, formatToken{value: literal.String()})
			literal.Reset()
		}
	}

	for i, n := 0, len(raw); i < n; {
		switch c := raw[i]; c {

		case '{':
			if i+1 < n && raw[i+1] == '{' {
				literal.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexByte(raw[i+1:], '}')
			if end == -1 {
				return nil, ekaerr.IllegalFormat.
					New(s + "Unterminated placeholder.").
					AddFields(
						"translatable_template", raw,
						"translatable_template_offset", i).
					Throw()
			}

			name := raw[i+1 : i+1+end]
			if !isIdentifier(name) {
				return nil, ekaerr.IllegalFormat.
					New(s + "Placeholder name is not a valid identifier.").
					AddFields(
						"translatable_template", raw,
						"translatable_placeholder", name).
					Throw()
			}

			flushLiteral()
			tokens = append(tokens, formatToken{value: name, placeholder: true})
			i += end + 2

		case '}':
			if i+1 < n && raw[i+1] == '}' {
				literal.WriteByte('}')
				i += 2
				continue
			}
			return nil, ekaerr.IllegalFormat.
				New(s + "Unexpected '}' outside of a placeholder.").
				AddFields(
					"translatable_template", raw,
					"translatable_template_offset", i).
				Throw()

		default:
			literal.WriteByte(c)
			i++
		}
	}

	flushLiteral()
	return &FormatString{raw: raw, tokens: tokens}, nil
}

/*
Raw returns the original (unparsed) text of the current FormatString.
*/
func (f *FormatString) Raw() string {
	if f == nil {
		return ""
	}
	return f.raw
}

/*
Placeholders returns the names of all placeholders
of the current FormatString, deduplicated, in the order
of their first occurrence.
*/
func (f *FormatString) Placeholders() []string {
	if f == nil {
		return nil
	}

	var names []string
	for _, token := range f.tokens {
		if !token.placeholder {
			continue
		}
		seen := false
		for _, name := range names {
			if name == token.value {
				seen = true
				break
			}
		}
		if !seen {
			names = append(names, token.value)
		}
	}
	return names
}

/*
ReplaceWith renders the current FormatString substituting its placeholders
with the values from passed replacements.

Values are stringified the ekago way (ekastr.ToString):
strings as is, numbers and bools in their obvious form,
fmt.Stringer through its String() call.

Returns an error if at least one placeholder of the template
has no value in replacements. Unused replacement keys are fine.
*/
func (f *FormatString) ReplaceWith(replacements Replacements) (string, *ekaerr.Error) {
	const s = "Failed to render a translation template. "

	var out strings.Builder
	out.Grow(len(f.raw) + 64)

	for _, token := range f.tokens {
		if !token.placeholder {
			out.WriteString(token.value)
			continue
		}

		value, found := replacements[token.value]
		if !found {
			return "", ErrMissingPlaceholder.
				New(s + "No value provided for a placeholder.").
				AddFields(
					"translatable_placeholder", token.value,
					"translatable_template", f.raw).
				Throw()
		}

		out.WriteString(ekastr.ToString(value))
	}

	return out.String(), nil
}
