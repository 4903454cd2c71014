// Package contenthash fingerprints questions for exact-match deduplication.
//
// The digest covers only the fields that identify a question semantically:
// its text, answers, and raw metadata string. Two questions with identical
// hashed fields are the same question no matter which packet or edition they
// arrived in. Dedup is exact-hash only; near-duplicates hash apart.
package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fieldSeparator keeps adjacent fields from bleeding into one another, so
// {"ab","c"} and {"a","bc"} hash differently.
const fieldSeparator = "\x1f"

// Tossup fingerprints a single-answer question.
func Tossup(question, answer, metadata string) string {
	return digest(question, answer, metadata)
}

// Bonus fingerprints a multi-part question over its leadin, every part,
// every answer, and the raw metadata string.
func Bonus(leadin string, parts, answers []string, metadata string) string {
	fields := make([]string, 0, len(parts)+len(answers)+2)
	fields = append(fields, leadin)
	fields = append(fields, parts...)
	fields = append(fields, answers...)
	fields = append(fields, metadata)
	return digest(fields...)
}

func digest(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, fieldSeparator)))
	return hex.EncodeToString(sum[:])
}
