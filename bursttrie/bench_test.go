package bursttrie

import (
	"testing"
)

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	b.ResetTimer()

	for i, key := range keys {
		m[key] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	for i, key := range keys {
		m[key] = i
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = New[int]()
	)

	b.ResetTimer()

	for i, key := range keys {
		m.SetString(key, i)
	}
}

func BenchmarkMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = New[int]()
	)

	for i, key := range keys {
		m.SetString(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = m.GetString(key)
	}
}
