package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenScanner splits a line into whitespace delimited tokens, upper-casing
// each one as it goes. The line itself is left untouched.
type tokenScanner struct {
	line string
	off  int
}

func (sc *tokenScanner) next() (token string, ok bool) {
	start := -1
	for sc.off < len(sc.line) {
		r, n := utf8.DecodeRuneInString(sc.line[sc.off:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				break
			}
		} else if start < 0 {
			start = sc.off
		}
		sc.off += n
	}
	if start < 0 {
		return "", false
	}
	return strings.ToUpper(sc.line[start:sc.off]), true
}

// tokenize returns all tokens in line.
func tokenize(line string) (tokens []string) {
	sc := tokenScanner{line: line}
	for token, ok := sc.next(); ok; token, ok = sc.next() {
		tokens = append(tokens, token)
	}
	return tokens
}

// parseLiteral parses a token of the form [+-]?[0-9]+ into a cell. Values
// that do not fit in 32 bits wrap around.
func parseLiteral(token string) (int32, bool) {
	digits := token
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, false
	}
	var n uint32
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint32(c-'0')
	}
	if neg {
		n = -n
	}
	return int32(n), true
}
