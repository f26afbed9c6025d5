// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"sort"
)

type (
	/*
	TranslationObject is one localized message:
	a set of per-language parsed templates for the same logical string.

	All resolution in the end comes down to a TranslationObject:
	pick a template by Language, render it with Replacements.
	*/
	TranslationObject map[Language]*FormatString

	/*
	TranslationNode is one node of the merged translation tree.

	A node is EITHER a leaf (holds a TranslationObject) OR a branch
	(holds named children), never both. The kind of a node is decided
	at the load of its translation source and never changes afterwards.

	origin is the relative path of the source file the node came from.
	It's diagnostic-only and makes merge conflicts reportable:
	"a::b is a message in one.toml but a namespace in two.toml".
	*/
	TranslationNode struct {
		object   TranslationObject
		children map[string]*TranslationNode
		origin   string
	}
)

/*
NewLeafNode constructs a leaf TranslationNode over passed object,
remembering origin as the source it came from.
*/
func NewLeafNode(object TranslationObject, origin string) *TranslationNode {
	return &TranslationNode{object: object, origin: origin}
}

/*
NewBranchNode constructs an empty branch TranslationNode,
remembering origin as the source it came from.
*/
func NewBranchNode(origin string) *TranslationNode {
	return &TranslationNode{children: make(map[string]*TranslationNode), origin: origin}
}

/*
Get returns the parsed template of the current TranslationObject
for passed language, or nil if the message has no translation
into that language.
*/
func (o TranslationObject) Get(language Language) *FormatString {
	return o[language]
}

/*
Languages returns all languages the current TranslationObject
is translated into, sorted by their canonical codes.
*/
func (o TranslationObject) Languages() []Language {
	languages := make([]Language, 0, len(o))
	for language := range o {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i] < languages[j]
	})
	return languages
}

/*
IsLeaf reports whether the current TranslationNode is a leaf
(holds a message), as opposed to a branch (holds a namespace).
*/
func (n *TranslationNode) IsLeaf() bool {
	return n != nil && n.object != nil
}

/*
Object returns the TranslationObject of the current TranslationNode,
or nil if the node is a branch.
*/
func (n *TranslationNode) Object() TranslationObject {
	if n == nil {
		return nil
	}
	return n.object
}

/*
Child returns the child of the current TranslationNode with passed name,
or nil if the node is a leaf or has no such child.
*/
func (n *TranslationNode) Child(name string) *TranslationNode {
	if n == nil {
		return nil
	}
	return n.children[name]
}

/*
Origin returns the relative path of the translation source
the current TranslationNode came from.
*/
func (n *TranslationNode) Origin() string {
	if n == nil {
		return ""
	}
	return n.origin
}
