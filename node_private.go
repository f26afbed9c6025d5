// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
)

/*
mergeFrom merges src into the current TranslationNode, recursively.

overlap decides what happens when both trees define a translation
of the same message into the same language:
TRANSLATION_OVERLAP_OVERWRITE takes src's variant,
TRANSLATION_OVERLAP_IGNORE keeps the already merged one.
Languages only one side defines are always combined.

A structural conflict (the same path is a message in one tree
and a namespace in the other) is an error regardless of overlap.

at is the path of the current node from the tree's root,
for error reports only.
*/
func (n *TranslationNode) mergeFrom(

	src *TranslationNode,
	overlap TranslationOverlap,
	at []string,

) *ekaerr.Error {

	const s = "Failed to merge translation sources. "

	if n.IsLeaf() != src.IsLeaf() {
		return ErrMerge.
			New(s + "The same path is a message in one source but a namespace in another.").
			AddFields(
				"translatable_path", strings.Join(at, PATH_DELIMITER),
				"translatable_source_existing", n.origin,
				"translatable_source_new", src.origin).
			Throw()
	}

	if n.IsLeaf() {
		for language, formatString := range src.object {
			if _, alreadyThere := n.object[language]; alreadyThere &&
				overlap != TRANSLATION_OVERLAP_OVERWRITE {
				continue
			}
			n.object[language] = formatString
		}
		return nil
	}

	for name, srcChild := range src.children {
		child, alreadyThere := n.children[name]
		if !alreadyThere {
			n.children[name] = srcChild
			continue
		}
		if err := child.mergeFrom(srcChild, overlap, append(at, name)); err.IsNotNil() {
			return err.Throw()
		}
	}

	return nil
}

/*
objectsTotal returns the number of leaves (messages)
in the subtree of the current TranslationNode.
*/
func (n *TranslationNode) objectsTotal() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, child := range n.children {
		total += child.objectsTotal()
	}
	return total
}
