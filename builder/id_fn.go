// Package builder provides vertex ID schemes for the constructors.
package builder

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of letters in a spreadsheet-column digit.
const alphabetSize = 26

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns the decimal string of idx+1, e.g. 0→"1", 4→"5".
// Panics if idx < 0.
func OneBasedIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("OneBasedIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.Itoa(idx + 1)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	return column(idx, 'A', "ExcelColumnIDFn")
}

// LetterIDFn is ExcelColumnIDFn in lowercase: 0→"a", 5→"f", 26→"aa".
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	return column(idx, 'a', "LetterIDFn")
}

func column(idx int, first rune, name string) string {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", name, idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, first+rune(i%alphabetSize))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithOneBasedIDs sets the ID scheme to OneBasedIDFn.
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
