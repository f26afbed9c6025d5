// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"sync"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekalog"
)

type (
	/*
	Client is the orchestrator of the translation system:
	it loads the configuration, discovers and parses the sources,
	folds them into a TranslationNodeCollection
	and answers resolution requests over it.

	The build is lazy and happens exactly once,
	at the first request. If the build fails,
	every following request returns the same build error.
	A built Client is immutable and safe for a concurrent use.

	The zero Client is ready to use. The package-level functions
	(Resolve, FindPath, ...) are shortcuts over a default one.
	*/
	Client struct {
		once       sync.Once
		config     *Config
		collection *TranslationNodeCollection
		err        *ekaerr.Error
	}
)

var defaultClient Client

/*
Translations returns the merged translation tree of the current Client,
building it at the first call.
*/
func (c *Client) Translations() (*TranslationNodeCollection, *ekaerr.Error) {
	if err := c.build(); err.IsNotNil() {
		return nil, err.Throw()
	}
	return c.collection, nil
}

/*
Config returns the resolved configuration of the current Client,
building it at the first call.
*/
func (c *Client) Config() (*Config, *ekaerr.Error) {
	if err := c.build(); err.IsNotNil() {
		return nil, err.Throw()
	}
	return c.config, nil
}

/*
Resolve parses passed path ("greetings::informal")
and resolves it with passed language and replacements,
using the Client's configured fallback language.
*/
func (c *Client) Resolve(path string, language Language, replacements Replacements) (string, *ekaerr.Error) {

	parsedPath, err := ParsePath(path)
	if err.IsNotNil() {
		return "", err.Throw()
	}

	return c.ResolvePath(parsedPath, language, replacements)
}

/*
ResolvePath is Resolve over an already parsed Path.
*/
func (c *Client) ResolvePath(path Path, language Language, replacements Replacements) (string, *ekaerr.Error) {

	if err := c.build(); err.IsNotNil() {
		return "", err.Throw()
	}

	resolved, err := c.collection.Resolve(path, language, c.config.FallbackLanguage, replacements)
	if err.IsNotNil() {
		return "", err.Throw()
	}
	return resolved, nil
}

/*
FindPath parses passed path and returns the TranslationObject it locates,
or nil if there is no message at that path.

Unlike Resolve, a miss is not an error here:
FindPath is the existence check, Resolve is the contract.
A build failure is still an error.
*/
func (c *Client) FindPath(path string) (TranslationObject, *ekaerr.Error) {

	parsedPath, err := ParsePath(path)
	if err.IsNotNil() {
		return nil, err.Throw()
	}

	if err := c.build(); err.IsNotNil() {
		return nil, err.Throw()
	}

	return c.collection.Find(parsedPath), nil
}

/*
ResolveContext resolves a group of related messages under passed base path.
See TranslationNodeCollection.ResolveContext for the semantics.
*/
func (c *Client) ResolveContext(

	basePath string,
	fields []ContextField,
	language Language,
	replacements Replacements,

) (map[string]string, *ekaerr.Error) {

	parsedBasePath, err := ParsePath(basePath)
	if err.IsNotNil() {
		return nil, err.Throw()
	}

	if err := c.build(); err.IsNotNil() {
		return nil, err.Throw()
	}

	resolved, err := c.collection.ResolveContext(
		parsedBasePath, fields, language, c.config.FallbackLanguage, replacements)

	if err.IsNotNil() {
		return nil, err.Throw()
	}
	return resolved, nil
}

/*
build does the real work behind the current Client, exactly once:
configuration, discovery, parsing, merge.
*/
func (c *Client) build() *ekaerr.Error {
	c.once.Do(func() {
		c.config, c.collection, c.err = buildClient()
	})
	if c.err.IsNotNil() {
		return c.err.Throw()
	}
	return nil
}

func buildClient() (*Config, *TranslationNodeCollection, *ekaerr.Error) {
	const s = "Failed to build the translation client. "

	config, err := LoadConfig()
	if err.IsNotNil() {
		return nil, nil, err.AddMessage(s).Throw()
	}

	sourceItems, err := DiscoverSources(config.Path, config.SeekMode)
	if err.IsNotNil() {
		return nil, nil, err.AddMessage(s).Throw()
	}

	sources := make([]RawSource, 0, len(sourceItems))
	for _, sourceItem := range sourceItems {
		source, err := sourceItem.RawSource()
		if err.IsNotNil() {
			return nil, nil, err.AddMessage(s).Throw()
		}
		sources = append(sources, source)
	}

	collection, err := NewTranslationNodeCollection(sources, config.Overlap)
	if err.IsNotNil() {
		return nil, nil, err.AddMessage(s).Throw()
	}

	ekalog.Debug("translatable: translations loaded",
		"translatable_sources", len(sources),
		"translatable_objects", collection.ObjectsTotal())

	return config, collection, nil
}
