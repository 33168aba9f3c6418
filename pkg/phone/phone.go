// Package phone normalizes Indonesian phone numbers into the canonical
// international +62 form required by the WhatsApp messaging channel.
package phone

import "strings"

// Normalize converts a freeform Indonesian phone string into +62 form.
//
// Separators (spaces, hyphens, dots) are stripped first, then the first
// matching rule wins: a leading "08" becomes "+628…", a bare "62" prefix
// gets a "+", an already canonical "+62…" number is returned unchanged,
// and any other number without a leading "+" is treated as a local number
// and prefixed with "+62". Blank input yields "".
//
// No length or digit validation happens here; malformed numbers surface as
// provider send failures downstream.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '\t':
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, "08"):
		return "+62" + cleaned[1:]
	case strings.HasPrefix(cleaned, "62"):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "+62"):
		return cleaned
	case !strings.HasPrefix(cleaned, "+"):
		return "+62" + cleaned
	}

	return cleaned
}
