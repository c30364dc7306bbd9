package utils

import (
	"hash/fnv"

	"github.com/oklog/ulid/v2"
)

// GenerateID создает сортируемый по времени уникальный ID (ULID)
func GenerateID() string {
	return ulid.Make().String()
}

// StringToSeed превращает строку (ID сессии) в стабильное зерно для rand.
// Одна и та же строка всегда дает одно и то же число.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
