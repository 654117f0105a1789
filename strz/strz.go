// Package strz provides byte level string helpers and identifier matching.
package strz

import "strings"

func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func ToUpper(c byte) byte {
	return c - 32
}

func ToLower(c byte) byte {
	return c + 32
}

// Copied from bun.
// https://github.com/uptrace/bun/blob/04da1b6d1c6371a471d34822bf4d3bc429d57b1e/internal/underscore.go#L20

// Underscore converts "CamelCasedString" to "camel_cased_string".
func Underscore(s string) string {
	r := make([]byte, 0, len(s)+5)
	for i := range len(s) {
		c := s[i]
		if IsUpper(c) {
			if i > 0 && i+1 < len(s) && (IsLower(s[i-1]) || IsLower(s[i+1])) {
				r = append(r, '_', ToLower(c))
			} else {
				r = append(r, ToLower(c))
			}
		} else {
			r = append(r, c)
		}
	}
	return string(r)
}

// MatchName reports whether name refers to the Go identifier ident.
// The name may be the identifier itself, a case-insensitive spelling of it
// or its snake case form, so "name", "Name" and "created_at" match the
// fields Name, Name and CreatedAt.
func MatchName(ident, name string) bool {
	if name == "" {
		return false
	}
	return ident == name || strings.EqualFold(ident, name) || Underscore(ident) == name
}
