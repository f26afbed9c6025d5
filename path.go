// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	PATH_DELIMITER is a string that separates the segments
	of a translation path in its textual form: "greetings::informal".

	A path that starts with PATH_DELIMITER ("::greetings::informal")
	is an absolute path.
	*/
	PATH_DELIMITER = "::"
)

type (
	/*
	Span is a diagnostic-only value describing where a Path
	came from: a file and a line of the caller or of a translation source.

	The zero Span is the default span and means "location unknown".
	A Span never affects resolution. It only enriches error reports.
	*/
	Span struct {
		File string
		Line int
	}

	/*
	Path is a locator of one logical message in the translation tree:
	an ordered sequence of key segments plus an absolute flag.

	"greetings::informal" is a relative path of 2 segments,
	"::greetings::informal" is the same path but absolute.

	Path is immutable. All "modifying" operations (Merge)
	return a new Path. Equality is defined by Equal():
	by the segment sequence and the absolute flag, never by the Span.
	*/
	Path struct {
		segments []string
		span     Span
		absolute bool
	}
)

/*
NewPath constructs a Path from already validated parts.

The caller owns nothing after the call:
segments are copied to keep the Path immutable.
*/
func NewPath(segments []string, span Span, absolute bool) Path {
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Path{segments: copied, span: span, absolute: absolute}
}

/*
RootPath returns the explicit root path:
no segments, not absolute, default span.

It's the only Path that is allowed to have no segments.
*/
func RootPath() Path {
	return Path{}
}

/*
ParsePath parses the textual form of a translation path:
segments joined with "::", with an optional leading "::"
that marks the path as absolute.

Each segment must be a valid identifier.
An empty string, an empty segment ("a::" or "a::::b")
and a non-identifier segment are errors.
*/
func ParsePath(raw string) (Path, *ekaerr.Error) {
	const s = "Failed to parse a translation path. "

	if raw = strings.TrimSpace(raw); raw == "" {
		return Path{}, ekaerr.IllegalArgument.
			New(s + "Path is empty.").
			Throw()
	}

	absolute := strings.HasPrefix(raw, PATH_DELIMITER)
	if absolute {
		raw = raw[len(PATH_DELIMITER):]
	}

	segments := strings.Split(raw, PATH_DELIMITER)
	for _, segment := range segments {
		if !isIdentifier(segment) {
			return Path{}, ekaerr.IllegalArgument.
				New(s + "Path segment is empty or not a valid identifier.").
				AddFields(
					"translatable_path", raw,
					"translatable_path_segment", segment).
				Throw()
		}
	}

	return Path{segments: segments, absolute: absolute}, nil
}

/*
Segments returns the ordered key segments of the current Path.

The returned slice is the internal one. DO NOT MODIFY IT.
*/
func (p Path) Segments() []string {
	return p.segments
}

/*
Absolute reports whether the current Path is absolute
(its textual form starts with "::").
*/
func (p Path) Absolute() bool {
	return p.absolute
}

/*
Span returns the diagnostic span of the current Path.
*/
func (p Path) Span() Span {
	return p.span
}

/*
IsRoot reports whether the current Path is the explicit root path
(has no segments).
*/
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

/*
Merge concatenates the current Path with other:
the result's segments are p.segments + other.segments.

The absolute flag of the result is the one of the CURRENT path;
whether other is absolute or not is ignored.

Spans are joined. If the two spans originate from unrelated
source locations, the default span is used instead. Always.
The result never carries a half-combined location.
*/
func (p Path) Merge(other Path) Path {
	segments := make([]string, 0, len(p.segments)+len(other.segments))
	segments = append(segments, p.segments...)
	segments = append(segments, other.segments...)

	return Path{
		segments: segments,
		span:     p.span.Join(other.span),
		absolute: p.absolute,
	}
}

/*
StaticDisplay renders the canonical textual form of the current Path:
segments joined with "::", prefixed with "::" if the path is absolute.
*/
func (p Path) StaticDisplay() string {
	prefix := ""
	if p.absolute {
		prefix = PATH_DELIMITER
	}
	return prefix + strings.Join(p.segments, PATH_DELIMITER)
}

func (p Path) String() string {
	return p.StaticDisplay()
}

/*
Equal reports whether the current Path and other locate the same message:
the same segment sequence and the same absolute flag.
Spans are never compared.
*/
func (p Path) Equal(other Path) bool {
	if p.absolute != other.absolute || len(p.segments) != len(other.segments) {
		return false
	}
	for i, n := 0, len(p.segments); i < n; i++ {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

/*
Hash returns a hash of the current Path that is consistent with Equal():
equal paths always have equal hashes.
*/
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	if p.absolute {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	for _, segment := range p.segments {
		_, _ = h.Write([]byte(segment))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

/*
IsDefault reports whether the current Span is the default one
(location unknown).
*/
func (s Span) IsDefault() bool {
	return s.File == "" && s.Line == 0
}

/*
Join combines the current Span with other.

If either span is default, the other one wins.
If both point into the same file, the earliest line wins.
Spans from different files are unrelated: the default span is returned.
*/
func (s Span) Join(other Span) Span {
	switch {
	case s.IsDefault():
		return other
	case other.IsDefault():
		return s
	case s.File == other.File:
		if other.Line < s.Line {
			s.Line = other.Line
		}
		return s
	default:
		return Span{}
	}
}

func (s Span) String() string {
	if s.IsDefault() {
		return "<unknown location>"
	}
	return s.File + ":" + strconv.Itoa(s.Line)
}
