package expr

// Node is a parsed expression tree node.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int
}

// LiteralNode is a plain numeric literal. Its error bound comes from the
// evaluator's default-error policy.
type LiteralNode struct {
	Value  float64
	Offset int
}

// Pos returns the byte offset of the node in the source.
func (n LiteralNode) Pos() int { return n.Offset }

// UncertainNode is an explicit value±error literal.
type UncertainNode struct {
	Value  float64
	Err    float64
	Offset int
}

// Pos returns the byte offset of the node in the source.
func (n UncertainNode) Pos() int { return n.Offset }

// BinaryNode applies one of + - * / ^ to two operands.
type BinaryNode struct {
	Op     tokenKind
	Left   Node
	Right  Node
	Offset int
}

// Pos returns the byte offset of the node in the source.
func (n BinaryNode) Pos() int { return n.Offset }

// NegNode negates its operand.
type NegNode struct {
	Operand Node
	Offset  int
}

// Pos returns the byte offset of the node in the source.
func (n NegNode) Pos() int { return n.Offset }

// CallNode invokes a named propagation function with its arguments.
type CallNode struct {
	Name   string
	Args   []Node
	Offset int
}

// Pos returns the byte offset of the node in the source.
func (n CallNode) Pos() int { return n.Offset }

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lex lexer
	tok token
}

// Parse parses a single expression and reports the first syntax error.
// Trailing input after a complete expression is an error.
func Parse(src string) (Node, error) {
	p := parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, newParseError(p.tok.pos, "unexpected %q after expression", p.tok.text)
	}
	return node, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseExpr handles the lowest precedence level: + and -.
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryNode{Op: op, Left: left, Right: right, Offset: pos}
	}
	return left, nil
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar || p.tok.kind == tokSlash {
		op := p.tok.kind
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryNode{Op: op, Left: left, Right: right, Offset: pos}
	}
	return left, nil
}

// parseUnary handles prefix minus.
func (p *parser) parseUnary() (Node, error) {
	if p.tok.kind == tokMinus {
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NegNode{Operand: operand, Offset: pos}, nil
	}
	return p.parsePower()
}

// parsePower handles the right-associative ^ operator. Exponentiation
// binds tighter than unary minus on its left (-2^2 is -(2^2)) but the
// exponent may itself be signed (2^-1).
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokCaret {
		return base, nil
	}
	pos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return BinaryNode{Op: tokCaret, Left: base, Right: exp, Offset: pos}, nil
}

// parsePrimary handles literals, calls, and parenthesized expressions.
func (p *parser) parsePrimary() (Node, error) {
	switch p.tok.kind {
	case tokNumber:
		return p.parseNumber()
	case tokIdent:
		return p.parseCall()
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, newParseError(p.tok.pos, "expected ')', got %q", p.tok.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokEOF:
		return nil, newParseError(p.tok.pos, "unexpected end of expression")
	default:
		return nil, newParseError(p.tok.pos, "unexpected %q", p.tok.text)
	}
}

// parseNumber consumes a literal, optionally followed by ± and an error
// bound.
func (p *parser) parseNumber() (Node, error) {
	value := p.tok.num
	pos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokPlusMinus {
		return LiteralNode{Value: value, Offset: pos}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokNumber {
		return nil, newParseError(p.tok.pos, "expected error bound after ±, got %q", p.tok.text)
	}
	errBound := p.tok.num
	if err := p.advance(); err != nil {
		return nil, err
	}
	return UncertainNode{Value: value, Err: errBound, Offset: pos}, nil
}

// parseCall consumes a function invocation with a parenthesized argument
// list.
func (p *parser) parseCall() (Node, error) {
	name := p.tok.text
	pos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokLParen {
		return nil, newParseError(p.tok.pos, "expected '(' after function name %q", name)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []Node
	if p.tok.kind != tokRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if p.tok.kind != tokRParen {
		return nil, newParseError(p.tok.pos, "expected ')' closing call to %q, got %q", name, p.tok.text)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return CallNode{Name: name, Args: args, Offset: pos}, nil
}
