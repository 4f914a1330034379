package util

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var src = rand.NewSource(time.Now().UnixNano())

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// RandBytes returns n random ASCII letters.
func RandBytes(n int) []byte {
	b := make([]byte, n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return b
}

func RandString(n int) string {
	return string(RandBytes(n))
}

func RandIntn(min, max int) int {
	return rand.Intn(max-min) + min
}

// RandKeys returns n distinct letter keys of the given length. Short
// lengths can run out of distinct keys, so length must leave room for n.
func RandKeys(n, length int) [][]byte {
	seen := make(map[string]struct{}, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		k := RandBytes(length)
		if _, ok := seen[string(k)]; ok {
			continue
		}
		seen[string(k)] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// UUIDKeys returns n random version 4 UUIDs in their 16 byte binary form.
// They make good binary keys: any byte value can appear anywhere.
func UUIDKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		id := uuid.New()
		keys[i] = id[:]
	}
	return keys
}
