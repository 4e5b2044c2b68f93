package lexer

// Character classification per spec.md §4.4. Identifier characters span
// ASCII letters/underscore/digits plus the Arabic Unicode blocks and the
// Arabic-Indic digits; operator characters are a fixed ASCII set.

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isArabicIndicDigit(r rune) bool {
	return r >= 0x0660 && r <= 0x0669
}

// isArabicBlock reports whether r falls in one of the Arabic Unicode blocks
// named by spec.md §4.4: U+0600–06FF, U+0750–077F, U+08A0–08FF, U+FB50–FDFF,
// U+FE70–FEFF.
func isArabicBlock(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r >= 0x0750 && r <= 0x077F:
		return true
	case r >= 0x08A0 && r <= 0x08FF:
		return true
	case r >= 0xFB50 && r <= 0xFDFF:
		return true
	case r >= 0xFE70 && r <= 0xFEFF:
		return true
	default:
		return false
	}
}

func isIdentStart(r rune) bool {
	return isASCIILetter(r) || r == '_' || isArabicBlock(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isASCIIDigit(r) || isArabicIndicDigit(r)
}

func isOperatorChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '|', '%', '^', '~':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return isASCIIDigit(r) || isArabicIndicDigit(r)
}
