package crisp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The lexer produces either a delimiter rune (open paren, close paren, or
// quote mark) or a ready-made atom. Operator spellings resolve to their
// BuiltIn tag here; everything else that is not a number becomes a Symbol.
type lexer struct {
	r *bufio.Reader

	line, col int
	// position of the first rune of the token being read
	tokLine, tokCol int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1, col: 0}
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	if c == '\n' {
		l.line, l.col = l.line+1, 0
	} else {
		l.col++
	}
	return c, nil
}

func (l *lexer) unread(c rune) {
	l.r.UnreadRune()
	if c == '\n' {
		l.line--
	} else if l.col > 0 {
		l.col--
	}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Line: l.tokLine, Col: l.tokCol, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) next() (interface{}, error) {
	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}

		l.tokLine, l.tokCol = l.line, l.col

		switch c {
		case 0:
			return nil, io.EOF
		case '(', ')', '\'':
			return c, nil
		case ';':
			if err := l.lineComment(); err != nil {
				return nil, err
			}
		default:
			if isSpace(c) {
				continue
			}
			return l.atom(c)
		}
	}
}

func (l *lexer) lineComment() error {
	for {
		c, err := l.read()
		if err != nil {
			return err
		}
		if c == '\n' || c == 0 {
			return nil
		}
	}
}

func (l *lexer) atom(first rune) (interface{}, error) {
	var text strings.Builder
	text.WriteRune(first)

	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}
		if c == 0 || isSpace(c) || isDelimiter(c) {
			if c != 0 {
				l.unread(c)
			}
			break
		}
		text.WriteRune(c)
	}

	s := text.String()
	if isNumber(s) {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, l.errorf("number %s does not fit in 32 bits", s)
		}
		return Number(n), nil
	}
	if op, ok := builtinNames[s]; ok {
		return op, nil
	}
	return Symbol(s), nil
}

func isNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isDelimiter(c rune) bool {
	return c == '(' || c == ')' || c == '\'' || c == ';'
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
