package main

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"valley-farm/internal/save"
)

// maxNameBytes caps player names taken from the SSH user.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and cuts
// it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// saveKey derives a storage key from the raw SSH user. Only ASCII
// letters, digits, '-' and '_' survive, so the key is safe as a file name.
// A hash of the full user name keeps users that clean up to the same text
// on separate farms.
func saveKey(user string) string {
	var b strings.Builder
	for _, r := range sanitizeName(user) {
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := strings.Trim(b.String(), "_")
	if id == "" {
		id = "guest"
	}
	sum := strconv.FormatUint(xxhash.Sum64String(user)&0xffffffff, 16)
	return save.DefaultKey + "_" + id + "_" + sum
}
