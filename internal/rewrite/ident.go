package rewrite

// Identifier-character semantics for token boundaries. '$' is a legal
// identifier character in the target language, so "$fr" and "fr$" are
// identifiers, not occurrences of the alias "fr".

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isLineSpace(b byte) bool { return isSpaceOrTab(b) || b == '\r' || b == '\n' }

// skipSpaces advances past spaces and tabs, staying within [i, end).
func skipSpaces(src []byte, i, end uint32) uint32 {
	for i < end && isSpaceOrTab(src[i]) {
		i++
	}
	return i
}

// skipLineSpace advances past whitespace including line breaks. Keyword
// lookaheads use this so an alias split from its continuation by a newline
// still rewrites as one phrase.
func skipLineSpace(src []byte, i, end uint32) uint32 {
	for i < end && isLineSpace(src[i]) {
		i++
	}
	return i
}

// identEnd returns the offset one past the identifier starting at i.
func identEnd(src []byte, i, end uint32) uint32 {
	for i < end && isIdentContinue(src[i]) {
		i++
	}
	return i
}
