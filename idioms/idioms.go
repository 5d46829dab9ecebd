// Package idioms is a catalogue of small data-manipulation helpers, one
// per pattern: filtering and transforming slices, inverting and grouping
// maps, frequency counts, memoization, and path trees. Each function is
// deliberately self-contained so it can be lifted out on its own.
package idioms

import (
	"bufio"
	"os"
	"sort"
	"strings"
	"sync"
)

// EvenSquares returns the squares of the even values, in order.
func EvenSquares(numbers []int) []int {
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if n%2 == 0 {
			out = append(out, n*n)
		}
	}
	return out
}

// Invert swaps keys and values. If two keys share a value, the one kept is
// unspecified.
func Invert[K, V comparable](original map[K]V) map[V]K {
	out := make(map[V]K, len(original))
	for k, v := range original {
		out[v] = k
	}
	return out
}

// DuplicateIndexes maps each value that appears more than once to every
// index it appears at, in order.
func DuplicateIndexes[T comparable](items []T) map[T][]int {
	seen := make(map[T][]int, len(items))
	for i, item := range items {
		seen[item] = append(seen[item], i)
	}

	dups := make(map[T][]int)
	for item, idxs := range seen {
		if len(idxs) > 1 {
			dups[item] = idxs
		}
	}
	return dups
}

// Transpose flips a rectangular matrix. Transpose of an empty matrix is
// nil; ragged input is truncated to the shortest row.
func Transpose[T any](matrix [][]T) [][]T {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil
	}

	width := len(matrix[0])
	for _, row := range matrix {
		if len(row) < width {
			width = len(row)
		}
	}

	out := make([][]T, width)
	for j := range out {
		out[j] = make([]T, len(matrix))
		for i := range matrix {
			out[j][i] = matrix[i][j]
		}
	}
	return out
}

var (
	fibMu    sync.Mutex
	fibCache = map[int]uint64{0: 0, 1: 1}
)

// Fib returns the nth Fibonacci number, memoizing across calls. Negative n
// returns 0.
func Fib(n int) uint64 {
	if n < 0 {
		return 0
	}

	fibMu.Lock()
	defer fibMu.Unlock()
	return fibLocked(n)
}

func fibLocked(n int) uint64 {
	if v, ok := fibCache[n]; ok {
		return v
	}

	v := fibLocked(n-1) + fibLocked(n-2)
	fibCache[n] = v
	return v
}

// HasFields reports whether every record contains all of the required
// keys. An empty record set validates trivially.
func HasFields(records []map[string]any, required ...string) bool {
	for _, record := range records {
		for _, field := range required {
			if _, ok := record[field]; !ok {
				return false
			}
		}
	}
	return true
}

// GroupBy buckets items by the given key function, preserving input order
// within each bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

// WordCount pairs a word with how many times it appeared.
type WordCount struct {
	Word  string
	Count int
}

// TopWords returns the n most frequent words of the text, lowercased and
// split on whitespace. Ties break alphabetically so the result is stable.
func TopWords(text string, n int) []WordCount {
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		counts[w]++
	}

	all := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		all = append(all, WordCount{w, c})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Word < all[j].Word
	})

	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// PathTree builds a nested map from slash-separated paths, so
// {"a/b", "a/c"} becomes {a: {b: {}, c: {}}}.
func PathTree(paths []string) map[string]any {
	tree := make(map[string]any)
	for _, path := range paths {
		current := tree
		for _, part := range strings.Split(path, "/") {
			if part == "" {
				continue
			}

			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
	}
	return tree
}

// ReadLines returns the trimmed lines of a file, or an empty slice if the
// file does not exist.
func ReadLines(filename string) []string {
	f, err := os.Open(filename)
	if err != nil {
		return []string{}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	return lines
}
