package demo

import (
	"io"
	"sort"
)

func init() {
	Register("maps.create", mapsCreate)
	Register("maps.comma-ok", mapsCommaOk)
	Register("maps.mutate", mapsMutate)
	Register("maps.iterate", mapsIterate)
	Register("maps.nil", mapsNil)
	Register("maps.reference", mapsReference)
	Register("maps.nested", mapsNested)
	Register("maps.word-count", mapsWordCount)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mapsCreate(w io.Writer) {
	made := make(map[string]int)
	made["one"] = 1
	literal := map[string]float64{"pi": 3.14, "e": 2.72}
	result(w, "make: %v", made)
	result(w, "literal: %v", literal)
}

func mapsCommaOk(w io.Writer) {
	stock := map[string]int{"apples": 5, "pears": 0}
	for _, k := range []string{"apples", "pears", "plums"} {
		v, ok := stock[k]
		result(w, "stock[%q] = %d, present = %t", k, v, ok)
	}
}

func mapsMutate(w io.Writer) {
	m := map[string]int{"a": 1}
	m["b"] = 2
	m["a"] = 10
	result(w, "after add/update: %v (len %d)", m, len(m))
	delete(m, "a")
	delete(m, "missing")
	result(w, "after delete: %v (len %d)", m, len(m))
}

func mapsIterate(w io.Writer) {
	capitals := map[string]string{"France": "Paris", "Japan": "Tokyo", "Peru": "Lima"}
	for _, country := range sortedKeys(capitals) {
		result(w, "%s → %s", country, capitals[country])
	}
	say(w, "💡 Iteration order is random; sort keys for stable output.")
}

func mapsNil(w io.Writer) {
	var m map[string]int
	result(w, "m == nil: %t, m[\"x\"] = %d, len = %d", m == nil, m["x"], len(m))
	say(w, "⚠️  Writing to a nil map panics; initialize with make() first.")
}

func mapsReference(w io.Writer) {
	original := map[string]int{"x": 1}
	alias := original
	alias["x"] = 42
	result(w, "original[\"x\"] = %d after alias[\"x\"] = 42", original["x"])
}

func mapsNested(w io.Writer) {
	users := map[string]map[string]string{
		"alice": {"role": "admin", "team": "core"},
		"bob":   {"role": "dev", "team": "web"},
	}
	for _, name := range sortedKeys(users) {
		result(w, "%s: role=%s team=%s", name, users[name]["role"], users[name]["team"])
	}
}

func mapsWordCount(w io.Writer) {
	words := []string{"go", "is", "fun", "go", "is", "go"}
	counts := map[string]int{}
	for _, word := range words {
		counts[word]++
	}
	for _, word := range sortedKeys(counts) {
		result(w, "%s: %d", word, counts[word])
	}
}
