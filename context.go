// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	ContextField is one member of a translation context:
	a group of related messages resolved together under a common base path.

	Name is the key of the field in the resolved context
	and must be a valid identifier.

	Path is the field's path relative to the context's base path.
	The zero Path means "use Name as a single segment",
	which covers the typical case of a field
	that is named after its message.
	*/
	ContextField struct {
		Name string
		Path Path
	}
)

/*
path returns the effective relative path of the current ContextField:
the explicit one if it's set, a single Name segment otherwise.
*/
func (f ContextField) path() (Path, *ekaerr.Error) {
	const s = "Failed to build a context field path. "

	if !f.Path.IsRoot() {
		return f.Path, nil
	}

	if !isIdentifier(f.Name) {
		return Path{}, ekaerr.IllegalArgument.
			New(s + "Field name is empty or not a valid identifier.").
			AddFields("translatable_context_field", f.Name).
			Throw()
	}

	return NewPath([]string{f.Name}, Span{}, false), nil
}
