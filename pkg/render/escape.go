package render

import "bytes"

// literalReplacements maps special characters to replacements that print as
// the literal character inside a table cell. The HTML and LaTeX renderers
// share it.
var literalReplacements = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\letteropenbrace{}`,
	'}':  `\letterclosebrace{}`,
	'~':  `\lettertilde{}`,
	'^':  `\letterhat{}`,
	'\\': `\letterbackslash{}`,
	'>':  `\textgreater`,
	'<':  `\textless`,
}

func escapeLiteral(s string) string {
	var b bytes.Buffer
	for _, c := range s {
		if replacement, ok := literalReplacements[c]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
