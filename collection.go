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
	TranslationNodeCollection is the merged translation tree:
	all discovered sources folded into one, in the load order,
	under one overlap policy.

	The collection is immutable after NewTranslationNodeCollection
	and is safe for a concurrent read access.
	*/
	TranslationNodeCollection struct {
		root         *TranslationNode
		objectsTotal int
	}
)

/*
NewTranslationNodeCollection folds passed sources into one translation tree.

Sources are merged sequentially, in the order they are passed in
(DiscoverSources returns them already in the load order).
overlap decides the winner when two sources translate the same message
into the same language. A structural conflict (a message in one source,
a namespace in another) is an error regardless of overlap.
*/
func NewTranslationNodeCollection(

	sources []RawSource,
	overlap TranslationOverlap,

) (*TranslationNodeCollection, *ekaerr.Error) {

	root := NewBranchNode("")

	for _, source := range sources {
		if err := root.mergeFrom(source.Root, overlap, nil); err.IsNotNil() {
			return nil, err.Throw()
		}
	}

	return &TranslationNodeCollection{
		root:         root,
		objectsTotal: root.objectsTotal(),
	}, nil
}

/*
ObjectsTotal returns the number of messages in the current collection.
*/
func (c *TranslationNodeCollection) ObjectsTotal() int {
	return c.objectsTotal
}

/*
FindPath walks the current collection's tree along passed segments
and returns the TranslationObject the walk ends at.

Returns nil if the walk fails in any way:
a segment is absent, the walk hits a message before the segments
are exhausted, or it ends at a namespace instead of a message.
*/
func (c *TranslationNodeCollection) FindPath(segments []string) TranslationObject {
	node := c.root
	for _, segment := range segments {
		if node = node.Child(segment); node == nil {
			return nil
		}
	}
	if !node.IsLeaf() {
		return nil
	}
	return node.Object()
}

/*
Find is FindPath over a Path value.
*/
func (c *TranslationNodeCollection) Find(path Path) TranslationObject {
	return c.FindPath(path.Segments())
}

/*
Resolve resolves one message of the current collection:
locates the TranslationObject at passed path, picks its template
by language (falling back to fallbackLanguage if the requested one
is unavailable and a fallback is configured)
and renders it with passed replacements.

The fallback is checked EAGERLY: if a fallback language is configured
but the located message has no translation into it, the resolution
fails even when the requested language is available.
A message that can't hold its own fallback contract is a data bug
and must be surfaced, not masked by a lucky direct hit.

Returns an error if the path locates no message (ErrPathNotFound),
the fallback contract is violated (ErrFallbackNotAvailable),
neither the requested nor the fallback language is available
(ErrLanguageNotAvailable), or the rendering fails
(ErrMissingPlaceholder).
*/
func (c *TranslationNodeCollection) Resolve(

	path Path,
	language Language,
	fallbackLanguage *Language,
	replacements Replacements,

) (string, *ekaerr.Error) {

	const s = "Failed to resolve a translation. "

	object := c.Find(path)
	if object == nil {
		return "", ErrPathNotFound.
			New(s + "No message at the requested path.").
			AddFields("translatable_path", path.StaticDisplay()).
			Throw()
	}

	var fallbackFormatString *FormatString
	if fallbackLanguage != nil {
		if fallbackFormatString = object.Get(*fallbackLanguage); fallbackFormatString == nil {
			return "", ErrFallbackNotAvailable.
				New(s + "The message has no translation into the fallback language.").
				AddFields(
					"translatable_path", path.StaticDisplay(),
					"translatable_fallback_language", fallbackLanguage.Code()).
				Throw()
		}
	}

	formatString := object.Get(language)
	if formatString == nil {
		formatString = fallbackFormatString
	}

	if formatString == nil {
		return "", ErrLanguageNotAvailable.
			New(s + "The message has no translation into the requested language.").
			AddFields(
				"translatable_path", path.StaticDisplay(),
				"translatable_language", language.Code()).
			Throw()
	}

	rendered, err := formatString.ReplaceWith(replacements)
	if err.IsNotNil() {
		return "", err.
			AddMessage(s).
			AddFields("translatable_path", path.StaticDisplay()).
			Throw()
	}

	return rendered, nil
}

/*
ResolveContext resolves a group of related messages at once:
for each passed field, basePath merged with the field's path
is resolved with the same language, fallback and replacements.

The result maps each field's name to its rendered message.
The whole group either resolves or fails: the first failing field
fails the call.
*/
func (c *TranslationNodeCollection) ResolveContext(

	basePath Path,
	fields []ContextField,
	language Language,
	fallbackLanguage *Language,
	replacements Replacements,

) (map[string]string, *ekaerr.Error) {

	const s = "Failed to resolve a translation context. "

	resolved := make(map[string]string, len(fields))

	for _, field := range fields {
		fieldPath, err := field.path()
		if err.IsNotNil() {
			return nil, err.
				AddMessage(s).
				Throw()
		}

		rendered, err := c.Resolve(basePath.Merge(fieldPath), language, fallbackLanguage, replacements)
		if err.IsNotNil() {
			return nil, err.
				AddMessage(s).
				AddFields("translatable_context_field", field.Name).
				Throw()
		}

		resolved[field.Name] = rendered
	}

	return resolved, nil
}
