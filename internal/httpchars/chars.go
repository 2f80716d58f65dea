package httpchars

type class uint8

const (
	cControl class = iota
	cSpace
	cDelimiter
	cToken
)

const delimiters = "()<>@,;:\\\"/[]?={}"

var classes = newClassTable()

func newClassTable() (table [256]class) {
	for c := 0x21; c <= 0x7e; c++ {
		table[c] = cToken
	}

	for i := 0; i < len(delimiters); i++ {
		table[delimiters[i]] = cDelimiter
	}

	table[' '] = cSpace

	return table
}

// IsSpace reports whether c is the literal space. Tabs are not considered.
func IsSpace(c byte) bool {
	return c == ' '
}

func IsCR(c byte) bool {
	return c == '\r'
}

func IsLF(c byte) bool {
	return c == '\n'
}

// IsVisual reports whether c is a printable ASCII character other than space.
func IsVisual(c byte) bool {
	return classes[c] >= cDelimiter
}

// IsDelimiter reports whether c belongs to the RFC 7230 separators set.
func IsDelimiter(c byte) bool {
	return classes[c] == cDelimiter
}

// IsTokenChar reports whether c is allowed in methods and header names.
func IsTokenChar(c byte) bool {
	return classes[c] == cToken
}

// ToLower folds ASCII upper-case letters. Every other byte is returned untouched.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}

// EqualFold compares str case-insensitively against lower, which must be already
// lower-cased. Only ASCII letters are folded, so punctuation never matches its |0x20
// neighbour.
func EqualFold(str, lower string) bool {
	if len(str) != len(lower) {
		return false
	}

	for i := 0; i < len(str); i++ {
		if ToLower(str[i]) != lower[i] {
			return false
		}
	}

	return true
}
