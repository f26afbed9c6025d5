// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

var (
	/*
	ErrConfig is an error class of all configuration failures:
	an IO error reading "./translatable.toml", an invalid TOML document,
	an invalid value of some enumerated configuration entry.

	These errors are fatal and reported once, at the translations build.
	Since configuration is static for the process lifetime,
	they are never retried.
	*/
	ErrConfig = ekaerr.IllegalFormat.NewSubClass("Translatable.Config")

	/*
	ErrMerge is an error class of translation source merge conflicts:
	one source defines a message at some translation path,
	while another source defines a namespace at the same path.

	An error of that class always identifies the translation path
	and both contributing source files.
	*/
	ErrMerge = ekaerr.IllegalState.NewSubClass("Translatable.Merge")

	/*
	ErrPathNotFound is an error class meaning that the requested
	translation path does not lead to a message
	in the merged translation tree.
	*/
	ErrPathNotFound = ekaerr.NotFound.NewSubClass("Translatable.PathNotFound")

	/*
	ErrLanguageNotAvailable is an error class meaning that the requested
	Language has no variant at the requested translation path,
	and there was no configured fallback language to cover the miss.
	*/
	ErrLanguageNotAvailable = ekaerr.NotFound.NewSubClass("Translatable.LanguageNotAvailable")

	/*
	ErrFallbackNotAvailable is an error class meaning that a fallback
	language is configured but the translation at the requested path
	does not contain its variant.

	The check is eager:
	It fails even if the requested Language itself is present.
	Read more: TranslationNodeCollection.Resolve().
	*/
	ErrFallbackNotAvailable = ekaerr.NotFound.NewSubClass("Translatable.FallbackNotAvailable")

	/*
	ErrMissingPlaceholder is an error class meaning that a format string
	references a placeholder that is absent from the provided Replacements.
	*/
	ErrMissingPlaceholder = ekaerr.IllegalArgument.NewSubClass("Translatable.MissingPlaceholder")
)
