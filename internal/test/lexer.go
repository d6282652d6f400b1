package test

import (
	"math/rand"
	"strings"
)

const validTokens = "print;function;return;null;(;);\"this is a string\";\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.\";\"this is a small string\";\"\";+;-;*;/;123;321;-7;//comment\n;\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetRandomExprs returns size numeric expressions of the form "a op b", one
// per line, all unsigned.
func GetRandomExprs(size int) string {
	ops := []string{"+", "-", "*", "/"}

	var lines []string
	for len(lines) < size {
		lines = append(lines, strings.Join([]string{
			randomNumber(),
			ops[rand.Intn(len(ops))],
			randomNumber(),
		}, " "))
	}

	return strings.Join(lines, "\n")
}

func randomNumber() string {
	digits := "123456789"
	return string(digits[rand.Intn(len(digits))])
}
