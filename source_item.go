// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"sort"

	"github.com/qioalice/ekago/v2/ekaerr"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type (
	/*
	SourceItem is one discovered translation source:
	a TOML or YAML file under the configured locales directory.

	Path is the absolute filepath of the source.
	RelPath is the same path relative to the locales directory,
	always slash-separated. RelPath is what the load order
	(SeekMode) is defined over and what error reports refer to.

	A SourceItem holds the raw file content. It doesn't mean
	the content is valid: parsing happens at RawSource().
	*/
	SourceItem struct {
		Type    SourceItemType
		Path    string
		RelPath string
		content []byte
	}

	/*
	SourceItemType tells which format a SourceItem holds: YAML or TOML.
	*/
	SourceItemType uint8

	/*
	RawSource is one parsed (but not yet merged) translation source:
	the tree of a single file, with the file's relative path kept
	for merge conflict reports.
	*/
	RawSource struct {
		RelPath string
		Root    *TranslationNode
	}
)

//goland:noinspection GoSnakeCaseUsage
const (
	SOURCE_ITEM_TYPE_FILE_YAML SourceItemType = 100
	SOURCE_ITEM_TYPE_FILE_TOML SourceItemType = 101
)

/*
DiscoverSources scans passed root directory recursively
and returns all translation sources found under it:
files with a ".toml", ".yml" or ".yaml" extension.
Files with any other extension are silently skipped.

The returned slice is sorted by the sources' relative paths,
ascending for SEEK_MODE_ALPHABETICAL,
descending for SEEK_MODE_UNALPHABETICAL.
That order is the merge order.
*/
func DiscoverSources(root string, seekMode SeekMode) ([]SourceItem, *ekaerr.Error) {

	var dest []SourceItem
	if err := discoverSources(&dest, root, root, 0); err.IsNotNil() {
		return nil, err.Throw()
	}

	sort.Slice(dest, func(i, j int) bool {
		if seekMode == SEEK_MODE_UNALPHABETICAL {
			return dest[i].RelPath > dest[j].RelPath
		}
		return dest[i].RelPath < dest[j].RelPath
	})

	return dest, nil
}

/*
RawSource parses the content of the current SourceItem
and returns its translation tree.

Returns an error if the content is not a valid document
of the SourceItem's format, or if the document violates
the translation source structure:
the top level must be a namespace, each namespace key must be
a valid identifier, each message must map ISO 639-1 language codes
to templates, and messages and namespaces must not be mixed
under the same key.
*/
func (si SourceItem) RawSource() (RawSource, *ekaerr.Error) {
	const s = "Failed to parse a translation source. "

	var (
		document  = make(map[string]interface{})
		legacyErr error
	)

	switch si.Type {
	case SOURCE_ITEM_TYPE_FILE_TOML:
		legacyErr = toml.Unmarshal(si.content, &document)
	case SOURCE_ITEM_TYPE_FILE_YAML:
		legacyErr = yaml.Unmarshal(si.content, &document)
	default:
		return RawSource{}, ekaerr.InternalError.
			New(s + "Unexpected type of translation source. This is a bug.").
			AddFields("translatable_source", si.RelPath).
			Throw()
	}

	if legacyErr != nil {
		return RawSource{}, ekaerr.IllegalFormat.
			Wrap(legacyErr, s+"The document is malformed.").
			AddFields("translatable_source", si.RelPath).
			Throw()
	}

	if len(document) == 0 {
		return RawSource{}, ekaerr.IllegalFormat.
			New(s + "The document is empty.").
			AddFields("translatable_source", si.RelPath).
			Throw()
	}

	root, err := buildNode(document, si.RelPath, nil)
	if err.IsNotNil() {
		return RawSource{}, err.
			AddFields("translatable_source", si.RelPath).
			Throw()
	}

	if root.IsLeaf() {
		return RawSource{}, ekaerr.IllegalFormat.
			New(s + "The top level of the document must be a namespace, not a message.").
			AddFields("translatable_source", si.RelPath).
			Throw()
	}

	return RawSource{RelPath: si.RelPath, Root: root}, nil
}
