package engine

import "fmt"

// Kind classifies a primitive token
type Kind uint8

const (
	KindNop Kind = iota
	KindGo
	KindGoNext
	KindDelay
	KindTranslate
	KindRotate
	KindHue
	KindScale
	KindSat
	KindLum
	KindCommitAll
)

// Token is a parsed primitive instruction.
// Dir is set for KindGo and KindTranslate, Level for KindDelay, Step (+1/-1) for rotate, hue and periodic kinds.
type Token struct {
	Kind  Kind
	Dir   Direction
	Level int
	Step  int
}

// Navigates reports whether executing the token moves the walk
func (t Token) Navigates() bool {
	return t.Kind == KindGo || t.Kind == KindGoNext
}

// Excites reports whether executing the token marks the cell excited
func (t Token) Excites() bool {
	switch t.Kind {
	case KindNop, KindGo, KindGoNext, KindCommitAll:
		return false
	}
	return true
}

func (t Token) String() string {
	side := func() string {
		if t.Step < 0 {
			return "L"
		}
		return "R"
	}
	switch t.Kind {
	case KindNop:
		return "nop"
	case KindGo:
		return fmt.Sprintf("g%d", t.Dir)
	case KindGoNext:
		return "gN"
	case KindDelay:
		return fmt.Sprintf("d%d", t.Level)
	case KindTranslate:
		return fmt.Sprintf("t%d", t.Dir)
	case KindRotate:
		return "r" + side()
	case KindHue:
		return "h" + side()
	case KindScale:
		return "c" + side()
	case KindSat:
		return "s" + side()
	case KindLum:
		return "l" + side()
	case KindCommitAll:
		return "commitAll"
	}
	return fmt.Sprintf("token(%d)", t.Kind)
}

var stepKinds = map[byte]Kind{
	'r': KindRotate,
	'h': KindHue,
	'c': KindScale,
	's': KindSat,
	'l': KindLum,
}

// ParseToken parses one primitive token string
func ParseToken(s string) (Token, error) {
	switch s {
	case "nop":
		return Token{Kind: KindNop}, nil
	case "gN":
		return Token{Kind: KindGoNext}, nil
	case "commitAll":
		return Token{Kind: KindCommitAll}, nil
	}

	if len(s) != 2 {
		return Token{}, &UnknownTokenError{Token: s}
	}

	head, tail := s[0], s[1]
	switch head {
	case 'g', 't':
		d := Direction(tail - '0')
		if tail < '0' || tail > '9' || !d.Valid() {
			return Token{}, &UnknownTokenError{Token: s}
		}
		if head == 'g' {
			return Token{Kind: KindGo, Dir: d}, nil
		}
		return Token{Kind: KindTranslate, Dir: d}, nil

	case 'd':
		if tail < '1' || tail > '9' {
			return Token{}, &UnknownTokenError{Token: s}
		}
		return Token{Kind: KindDelay, Level: int(tail - '0')}, nil
	}

	kind, ok := stepKinds[head]
	if !ok {
		return Token{}, &UnknownTokenError{Token: s}
	}
	switch tail {
	case 'R':
		return Token{Kind: kind, Step: 1}, nil
	case 'L':
		return Token{Kind: kind, Step: -1}, nil
	}
	return Token{}, &UnknownTokenError{Token: s}
}

// ParseTokens parses a token list, stopping at the first bad token.
// Index of the failing token is recorded in the error.
func ParseTokens(tokens []string) ([]Token, error) {
	out := make([]Token, len(tokens))
	for i, s := range tokens {
		tok, err := ParseToken(s)
		if err != nil {
			err.(*UnknownTokenError).Index = i
			return nil, err
		}
		out[i] = tok
	}
	return out, nil
}
