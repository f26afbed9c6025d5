// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	DiscoverSources() scans the locales directory recursively,
	meaning that its subdirectories are scanned too and so on.
	Up to this value.
	*/
	_SOURCE_MAX_RECURSIVELY_DIRECTORY_SCAN = 16
)

/*
discoverSources is the recursive worker behind DiscoverSources.

path is the item under processing (the root directory at deep == 0),
root is kept as is across the recursion to derive relative paths from.
*/
func discoverSources(dest *[]SourceItem, path, root string, deep int) *ekaerr.Error {
	const s = "Failed to discover translation sources. "

	f, legacyErr := os.Open(path)
	if legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to open provided path.").
			AddFields("translatable_source_path", path).
			Throw()
	}

	fi, legacyErr := f.Stat()
	if legacyErr != nil {
		//goland:noinspection GoUnhandledErrorResult
		f.Close()
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Opening path is successful but getting stat is failed.").
			AddFields("translatable_source_path", path).
			Throw()
	}

	if !fi.IsDir() {
		//goland:noinspection GoUnhandledErrorResult
		f.Close()

		var typ SourceItemType
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			typ = SOURCE_ITEM_TYPE_FILE_TOML
		case ".yml", ".yaml":
			typ = SOURCE_ITEM_TYPE_FILE_YAML
		default:
			// Not a translation source. Skip silently.
			return nil
		}

		content, legacyErr := ioutil.ReadFile(path)
		if legacyErr != nil {
			return ekaerr.DataUnavailable.
				Wrap(legacyErr, s+"Failed to read a translation source file.").
				AddFields("translatable_source_path", path).
				Throw()
		}

		relPath, legacyErr := filepath.Rel(root, path)
		if legacyErr != nil {
			return ekaerr.InternalError.
				Wrap(legacyErr, s+"Failed to derive a relative path of a source. This is a bug.").
				AddFields("translatable_source_path", path).
				Throw()
		}

		*dest = append(*dest, SourceItem{
			Type:    typ,
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			content: content,
		})
		return nil
	}

	// Ok, it's directory.

	if deep == _SOURCE_MAX_RECURSIVELY_DIRECTORY_SCAN {
		//goland:noinspection GoUnhandledErrorResult
		f.Close()
		return ekaerr.DataUnavailable.
			New(s + "Provided path contains too much nested directories.").
			AddFields("translatable_source_path", path).
			Throw()
	}

	fis, legacyErr := f.Readdir(-1)

	//goland:noinspection GoUnhandledErrorResult
	f.Close()

	if legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to scan a directory.").
			AddFields("translatable_source_path", path).
			Throw()
	}

	for _, fi := range fis {
		if err := discoverSources(dest, filepath.Join(path, fi.Name()), root, deep+1); err.IsNotNil() {
			return err.
				Throw()
		}
	}

	return nil
}

/*
buildNode walks over passed map[string]interface{},
treating it as one level of a translation source document,
and builds the corresponding TranslationNode:

 - If all values are basic Golang types (string, bool, int, uint, float, nil),
   the level is a message: its keys must be ISO 639-1 language codes,
   its values are stringified and parsed as translation templates.
   A leaf node is returned.

 - If all values are maps of the same type (map[string]interface{}),
   the level is a namespace: its keys must be valid identifiers,
   buildNode is called recursively for each value.
   A branch node is returned.

 - A level mixing the two, an empty level, or a value of any other type
   (arrays are prohibited) is an error.

at is the key path of the level from the document's root,
for error reports only.
*/
func buildNode(from map[string]interface{}, origin string, at []string) (*TranslationNode, *ekaerr.Error) {

	const s = "Failed to scan a key-value component. "

	var (
		scalars map[string]string
		tables  map[string]map[string]interface{}
		err     *ekaerr.Error
	)

	storeScalar := func(key, value string) *ekaerr.Error {
		if scalars == nil {
			scalars = make(map[string]string)
		}
		scalars[key] = value
		return nil
	}

	for key, value := range from {
		switch rtype := reflect2.RTypeOf(value); {

		case key == "":
			err = ekaerr.IllegalFormat.
				New(s + "Key is empty.")

		case rtype == 0:
			err = storeScalar(key, "<undefined>")

		case rtype == ekaunsafe.RTypeString():
			err = storeScalar(key, value.(string))

		case rtype == ekaunsafe.RTypeBool():
			b := *(*bool)(ekaunsafe.TakeRealAddr(value))
			value := "false"
			if b {
				value = "true"
			}
			err = storeScalar(key, value)

		case ekaunsafe.RTypeIsIntAny(rtype):
			i64 := *(*int64)(ekaunsafe.TakeRealAddr(value))
			err = storeScalar(key, strconv.FormatInt(i64, 10))

		case ekaunsafe.RTypeIsUintAny(rtype):
			u64 := *(*uint64)(ekaunsafe.TakeRealAddr(value))
			err = storeScalar(key, strconv.FormatUint(u64, 10))

		case ekaunsafe.RTypeIsFloatAny(rtype):
			f64 := *(*float64)(ekaunsafe.TakeRealAddr(value))
			bitSize := 32
			if rtype == ekaunsafe.RTypeFloat64() {
				bitSize = 64
			}
			err = storeScalar(key, strconv.FormatFloat(f64, 'f', 2, bitSize))

		case rtype == ekaunsafe.RTypeMapStringInterface():
			if tables == nil {
				tables = make(map[string]map[string]interface{})
			}
			tables[key] = value.(map[string]interface{})

		default:
			err = ekaerr.IllegalFormat.
				New(s + "Unexpected type of value.").
				AddFields("translatable_source_value_type", reflect2.TypeOf(value).String())
		}

		//goland:noinspection GoNilness
		if err.IsNotNil() {
			return nil, err.
				AddMessage(s).
				AddFields("translatable_source_key", key).
				Throw()
		}
	}

	switch {
	case len(scalars) > 0 && len(tables) > 0:
		return nil, ekaerr.IllegalFormat.
			New(s + "Messages and namespaces are mixed under the same key.").
			AddFields("translatable_path", strings.Join(at, PATH_DELIMITER)).
			Throw()

	case len(scalars) == 0 && len(tables) == 0:
		return nil, ekaerr.IllegalFormat.
			New(s + "The level is empty. Neither a message nor a namespace.").
			AddFields("translatable_path", strings.Join(at, PATH_DELIMITER)).
			Throw()
	}

	if len(scalars) > 0 {
		return buildLeafNode(scalars, origin, at)
	}

	node := NewBranchNode(origin)
	for key, table := range tables {
		if !isIdentifier(key) {
			return nil, ekaerr.IllegalFormat.
				New(s + "Namespace key is not a valid identifier.").
				AddFields(
					"translatable_path", strings.Join(at, PATH_DELIMITER),
					"translatable_source_key", key).
				Throw()
		}
		child, err := buildNode(table, origin, append(at, key))
		if err.IsNotNil() {
			return nil, err.Throw()
		}
		node.children[key] = child
	}

	return node, nil
}

/*
buildLeafNode turns one message level (already stringified values)
into a leaf TranslationNode: the keys are validated as language codes,
the values are parsed as translation templates.
*/
func buildLeafNode(scalars map[string]string, origin string, at []string) (*TranslationNode, *ekaerr.Error) {

	const s = "Failed to scan a message. "

	object := make(TranslationObject, len(scalars))

	for key, value := range scalars {
		language, ok := languageFromCode(key)
		if !ok {
			return nil, ekaerr.IllegalFormat.
				New(s + "Message key is not an ISO 639-1 language code.").
				AddFields(
					"translatable_path", strings.Join(at, PATH_DELIMITER),
					"translatable_source_key", key).
				Throw()
		}

		formatString, err := ParseFormatString(value)
		if err.IsNotNil() {
			return nil, err.
				AddMessage(s).
				AddFields(
					"translatable_path", strings.Join(at, PATH_DELIMITER),
					"translatable_language", language.Code()).
				Throw()
		}

		object[language] = formatString
	}

	return NewLeafNode(object, origin), nil
}
