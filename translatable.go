// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

/*
Package translatable resolves localized templated messages.

Translation sources are TOML or YAML files under one directory,
each a tree of namespaces ending in messages. A message maps
ISO 639-1 language codes to templates with named placeholders:

	[greetings.informal]
	en = "What's good {user}?"
	es = "Que tal {user}?"

All sources are merged into one tree at the first request,
in a deterministic order and under a configurable conflict policy,
and a message is addressed by its path: "greetings::informal".

The functions below are shortcuts over a package-wide default Client.
Construct your own Client if you need an isolated one.
*/
package translatable

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

/*
Translations returns the merged translation tree of the default Client.
*/
func Translations() (*TranslationNodeCollection, *ekaerr.Error) {
	collection, err := defaultClient.Translations()
	if err.IsNotNil() {
		return nil, err.Throw()
	}
	return collection, nil
}

/*
Resolve resolves the message at passed path ("greetings::informal")
into passed language, rendering it with passed replacements.
See TranslationNodeCollection.Resolve for the exact semantics,
including the eager fallback contract.
*/
func Resolve(path string, language Language, replacements Replacements) (string, *ekaerr.Error) {
	resolved, err := defaultClient.Resolve(path, language, replacements)
	if err.IsNotNil() {
		return "", err.Throw()
	}
	return resolved, nil
}

/*
ResolvePath is Resolve over an already parsed Path.
*/
func ResolvePath(path Path, language Language, replacements Replacements) (string, *ekaerr.Error) {
	resolved, err := defaultClient.ResolvePath(path, language, replacements)
	if err.IsNotNil() {
		return "", err.Throw()
	}
	return resolved, nil
}

/*
FindPath returns the TranslationObject at passed path,
or nil if there is no message there. A miss is not an error.
*/
func FindPath(path string) (TranslationObject, *ekaerr.Error) {
	object, err := defaultClient.FindPath(path)
	if err.IsNotNil() {
		return nil, err.Throw()
	}
	return object, nil
}

/*
ResolveContext resolves a group of related messages
under passed base path at once.
See TranslationNodeCollection.ResolveContext for the semantics.
*/
func ResolveContext(

	basePath string,
	fields []ContextField,
	language Language,
	replacements Replacements,

) (map[string]string, *ekaerr.Error) {

	resolved, err := defaultClient.ResolveContext(basePath, fields, language, replacements)
	if err.IsNotNil() {
		return nil, err.Throw()
	}
	return resolved, nil
}
