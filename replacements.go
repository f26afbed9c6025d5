// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

type (
	/*
	Replacements represents a map of named values
	that are substituted into the placeholders of a resolved format string.
	*/
	Replacements map[string]interface{}
)
