package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrDivisionByZero is returned when an expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}

// Evaluate parses and evaluates an arithmetic expression. The accepted
// grammar covers numeric literals (decimal and scientific notation), the
// named constants in constParams merged with params, the operators
// + - * / ^, unary minus, and parentheses. Exponentiation binds
// right-associatively. Nothing else is accepted: no function calls, no
// variables beyond named constants and params.
func Evaluate(expression string, params map[string]float64) (float64, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens, params: params}
	value, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return 0, fmt.Errorf("unexpected %q at position %d", tok.text, tok.pos)
	}
	return value, nil
}

func tokenize(expression string) ([]token, error) {
	var tokens []token
	runes := []rune(expression)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				j := i + 1
				if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
					j++
				}
				if j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
					for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
						j++
					}
					i = j
				}
			}
			text := string(runes[start:i])
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at position %d", text, start)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, value: value, pos: start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(runes[start:i]), pos: start})
		default:
			kind, found := operatorKind(r)
			if !found {
				return nil, fmt.Errorf("unexpected character %q at position %d", string(r), i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}
	tokens = append(tokens, token{kind: tokenEOF, text: "end of expression", pos: len(runes)})
	return tokens, nil
}

func operatorKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokenPlus, true
	case '-':
		return tokenMinus, true
	case '*':
		return tokenStar, true
	case '/':
		return tokenSlash, true
	case '^':
		return tokenCaret, true
	case '(':
		return tokenLParen, true
	case ')':
		return tokenRParen, true
	}
	return tokenEOF, false
}

type parser struct {
	tokens []token
	idx    int
	params map[string]float64
}

func (p *parser) peek() token {
	return p.tokens[p.idx]
}

func (p *parser) next() token {
	tok := p.tokens[p.idx]
	if tok.kind != tokenEOF {
		p.idx++
	}
	return tok
}

// parseExpression handles + and -, left-associative.
func (p *parser) parseExpression() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokenPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case tokenMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles * and /, left-associative.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokenStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokenSlash:
			tok := p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w at position %d", ErrDivisionByZero, tok.pos)
			}
			left /= right
		default:
			return left, nil
		}
	}
}

// parseUnary handles leading + and -. Unary minus binds looser than ^,
// so -2^2 is -(2^2).
func (p *parser) parseUnary() (float64, error) {
	switch p.peek().kind {
	case tokenMinus:
		p.next()
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -value, nil
	case tokenPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles ^, right-associative. The exponent re-enters
// parseUnary so 2^-3 parses.
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokenCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exponent), nil
}

func (p *parser) parsePrimary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return tok.value, nil
	case tokenIdent:
		name := strings.ToLower(tok.text)
		if value, found := p.params[name]; found {
			return value, nil
		}
		if value, found := constParams[name]; found {
			return value, nil
		}
		return 0, fmt.Errorf("unknown identifier %q at position %d", tok.text, tok.pos)
	case tokenLParen:
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return 0, fmt.Errorf("expected ) but found %q at position %d", closing.text, closing.pos)
		}
		return value, nil
	}
	return 0, fmt.Errorf("unexpected %q at position %d", tok.text, tok.pos)
}
