// Copyright 2026 The Tabrdf Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package voc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Schemes without an authority part that are still read as absolute IRIs.
// Anything else must be followed by "//" to avoid being mistaken for an
// undeclared prefix (foaf:Person is not an IRI with scheme "foaf").
var opaqueSchemes = map[string]bool{
	"urn":    true,
	"mailto": true,
	"tag":    true,
	"data":   true,
	"tel":    true,
	"geo":    true,
	"did":    true,
}

// IsAbsoluteIRI reports whether s starts with a URI scheme.
func IsAbsoluteIRI(s string) bool {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return false
	}
	scheme := s[:i]
	for j := 0; j < len(scheme); j++ {
		c := scheme[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	if strings.HasPrefix(s[i+1:], "//") {
		return true
	}
	return opaqueSchemes[strings.ToLower(scheme)] && len(s) > i+1
}

// IsPrefixName reports whether s is a valid Turtle prefix name (PN_PREFIX).
func IsPrefixName(s string) bool {
	return s != "" && isPrefixName(s)
}

func isPrefixName(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasSuffix(s, ".") {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !isNameRune(r) {
			return false
		}
	}
	return true
}

// isLocalName reports whether s can be written after "prefix:" without escaping.
func isLocalName(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasSuffix(s, ".") {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
			continue
		}
		if !isNameRune(r) {
			return false
		}
	}
	return true
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}

const iriForbidden = "<>\"{}|^`\\"

func isIRI(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c == 0x7f || strings.IndexByte(iriForbidden, c) >= 0 {
			return false
		}
	}
	return true
}

// EscapeLocal percent-encodes bytes of a local name that are not allowed in an IRI.
func EscapeLocal(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if mustEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if mustEscape(c) {
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func mustEscape(c byte) bool {
	return c <= 0x20 || c == 0x7f || strings.IndexByte(iriForbidden, c) >= 0
}
