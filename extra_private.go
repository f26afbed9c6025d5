// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

/*
isIdentifier reports whether passed s is a valid identifier:
a non-empty ASCII sequence of letters, digits and underscores,
not starting with a digit.

Both translation path segments and placeholder names must be identifiers.
*/
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, n := 0, len(s); i < n; i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
