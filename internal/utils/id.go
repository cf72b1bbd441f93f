package utils

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	idAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLen = 9
)

// NewID returns a record identifier: the current epoch millisecond encoded in
// base 36, followed by a random base-36 suffix. Uniqueness is statistical, not
// guaranteed; there is no merge scenario that would require more.
func NewID() string {
	return newIDAt(time.Now().UnixMilli())
}

func newIDAt(millis int64) string {
	buf := make([]byte, 0, 17)
	buf = strconv.AppendInt(buf, millis, 36)
	for range idSuffixLen {
		buf = append(buf, idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return string(buf)
}
