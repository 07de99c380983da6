package services

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// EmailHash derives the short alternate lookup key for a submission from the speaker's
// email. It is a convenience identifier, not a credential: the fold is a 32-bit string
// hash over a lossy probe (first and last three characters of the local part plus the
// domain), so distinct emails can collide.
//
// Characters are counted in UTF-16 code units so the result matches hashes issued by
// earlier deployments.
func EmailHash(email string) string {
	clean := strings.ToLower(strings.TrimSpace(email))
	local, domainPart, _ := strings.Cut(clean, "@")

	localUnits := utf16.Encode([]rune(local))
	probe := make([]uint16, 0, 6+len(domainPart))
	probe = append(probe, localUnits[:min(3, len(localUnits))]...)
	probe = append(probe, localUnits[max(0, len(localUnits)-3):]...)
	probe = append(probe, utf16.Encode([]rune(domainPart))...)

	var h int32
	for _, u := range probe {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	out := strconv.FormatInt(v, 36)
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}
