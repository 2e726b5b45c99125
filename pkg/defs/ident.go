package defs

import (
	"fmt"
	"strings"

	"github.com/DrSkyle/qstr/pkg/sys/unichar"
)

// Names for bytes that cannot appear in a Go identifier.
var byteNames = map[byte]string{
	' ': "space", '!': "bang", '"': "dquot", '#': "hash", '$': "dollar",
	'%': "percent", '&': "amp", '\'': "squot", '(': "paren_open",
	')': "paren_close", '*': "star", '+': "plus", ',': "comma", '-': "hyphen",
	'.': "dot", '/': "slash", ':': "colon", ';': "semicolon", '<': "lt",
	'=': "equals", '>': "gt", '?': "question", '@': "at", '[': "bracket_open",
	'\\': "backslash", ']': "bracket_close", '^': "caret", '`': "backtick",
	'{': "brace_open", '|': "pipe", '}': "brace_close", '~': "tilde",
}

// Ident mangles s into identifier characters. Identifier bytes are kept;
// other bytes become _name_ or _xHH_.
func Ident(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unichar.IsIdent(rune(c)) {
			sb.WriteByte(c)
			continue
		}
		if name, ok := byteNames[c]; ok {
			sb.WriteString("_" + name + "_")
		} else {
			fmt.Fprintf(&sb, "_x%02x_", c)
		}
	}
	return sb.String()
}

// GoName returns the constant name generated for s.
func GoName(s string) string {
	return "Q_" + Ident(s)
}
