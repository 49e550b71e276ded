/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"strings"
	"unicode"

	"github.com/suparena/coredata/models"
)

// DefaultMethodPrefix is used when GetMethodName is given an empty prefix.
const DefaultMethodPrefix = "get"

// GetMethodName returns the accessor name for the entity (kind, name).
// An empty prefix means DefaultMethodPrefix, so unprefixed names cannot be
// produced. The kind is omitted for root entities. With usePlural the declared plural is
// used, or the name with a trailing "s" when none is declared.
func (r *Registry) GetMethodName(kind, name, prefix string, usePlural bool) (string, error) {
	entity, err := r.GetEntity(kind, name)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		prefix = DefaultMethodPrefix
	}

	kindPrefix := ""
	if kind != models.KindRoot {
		kindPrefix = upperCamel(kind)
	}

	suffix := upperCamel(name)
	switch {
	case usePlural && entity.Plural != "":
		suffix = upperCamel(entity.Plural)
	case usePlural:
		suffix += "s"
	}
	return prefix + kindPrefix + suffix, nil
}

// upperCamel converts s to UpperCamelCase, e.g. "post_type" and "postType"
// both become "PostType", "XMLFeed" becomes "XmlFeed".
func upperCamel(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// words splits s on non-alphanumerics, lower-to-upper case changes, the end
// of an acronym, and letter/digit boundaries.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, c := range runes {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsDigit(c) != unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(c) && unicode.IsLower(prev):
				flush()
			case unicode.IsUpper(c) && unicode.IsUpper(prev) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, c)
	}
	flush()
	return out
}
