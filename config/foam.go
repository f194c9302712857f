package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a configuration tree in dictionary form. Unknown keys and
// malformed values surface as ErrInvalidConfig; structural checks run
// through Validate before the tree is returned.
func Parse(src string) (Config, error) {
	toks, err := lex(src)
	if err != nil {
		return Config{}, err
	}
	p := &parser{toks: toks}
	cfg, err := p.config()
	if err != nil {
		return Config{}, err
	}
	if !p.eof() {
		return Config{}, fmt.Errorf("%w: trailing input near %q", ErrInvalidConfig, p.peek().text)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type tokKind int

const (
	tokWord tokKind = iota
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokSemi
	tokEOF
)

type token struct {
	kind tokKind
	text string
	line int
}

func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated comment at line %d", ErrInvalidConfig, line)
			}
			line += strings.Count(src[i:i+2+end+2], "\n")
			i += 2 + end + 2
		case c == '{':
			toks = append(toks, token{tokLBrace, "{", line})
			i++
		case c == '}':
			toks = append(toks, token{tokRBrace, "}", line})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", line})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", line})
			i++
		case c == ';':
			toks = append(toks, token{tokSemi, ";", line})
			i++
		default:
			j := i
			for j < len(src) && !strings.ContainsRune(" \t\r\n{}();/", rune(src[j])) {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: unexpected character %q at line %d", ErrInvalidConfig, c, line)
			}
			toks = append(toks, token{tokWord, src[i:j], line})
			i = j
		}
	}
	toks = append(toks, token{tokEOF, "", line})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) eof() bool { return p.peek().kind == tokEOF }

func (p *parser) expect(k tokKind, what string) (token, error) {
	t := p.next()
	if t.kind != k {
		return t, fmt.Errorf("%w: expected %s at line %d, got %q",
			ErrInvalidConfig, what, t.line, t.text)
	}
	return t, nil
}

// config parses the body of one configuration node: a qbmm_type entry
// and an optional qbmm_setup block, in either order.
func (p *parser) config() (Config, error) {
	var cfg Config
	seenType, seenSetup := false, false
	for p.peek().kind == tokWord {
		key := p.next()
		switch key.text {
		case "qbmm_type":
			if seenType {
				return cfg, fmt.Errorf("%w: duplicate qbmm_type at line %d", ErrInvalidConfig, key.line)
			}
			seenType = true
			val, err := p.expect(tokWord, "qbmm_type value")
			if err != nil {
				return cfg, err
			}
			cfg.Type = val.text
			if _, err := p.expect(tokSemi, "';'"); err != nil {
				return cfg, err
			}
		case "qbmm_setup":
			if seenSetup {
				return cfg, fmt.Errorf("%w: duplicate qbmm_setup at line %d", ErrInvalidConfig, key.line)
			}
			seenSetup = true
			if _, err := p.expect(tokLBrace, "'{'"); err != nil {
				return cfg, err
			}
			if err := p.setup(&cfg.Setup); err != nil {
				return cfg, err
			}
			if _, err := p.expect(tokRBrace, "'}'"); err != nil {
				return cfg, err
			}
		default:
			return cfg, fmt.Errorf("%w: unknown key %q at line %d", ErrInvalidConfig, key.text, key.line)
		}
	}
	if !seenType {
		return cfg, fmt.Errorf("%w: missing qbmm_type", ErrInvalidConfig)
	}
	return cfg, nil
}

func (p *parser) setup(s *Setup) error {
	seen := map[string]bool{}
	for p.peek().kind == tokWord {
		key := p.next()
		if seen[key.text] {
			return fmt.Errorf("%w: duplicate key %q at line %d", ErrInvalidConfig, key.text, key.line)
		}
		seen[key.text] = true

		if key.text == "config1d" {
			list, err := p.configList()
			if err != nil {
				return err
			}
			s.Config1D = list
			continue
		}

		val, err := p.expect(tokWord, "value for "+key.text)
		if err != nil {
			return err
		}
		if err := setScalar(s, key.text, val.text, key.line); err != nil {
			return err
		}
		if _, err := p.expect(tokSemi, "';'"); err != nil {
			return err
		}
	}
	return nil
}

// configList parses `( { ... }; { ... }; );`.
func (p *parser) configList() ([]Config, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var list []Config
	for p.peek().kind == tokLBrace {
		p.next()
		child, err := p.config()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBrace, "'}'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokSemi, "';'"); err != nil {
			return nil, err
		}
		list = append(list, child)
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi, "';'"); err != nil {
		return nil, err
	}
	return list, nil
}

func setScalar(s *Setup, key, val string, line int) error {
	badValue := func() error {
		return fmt.Errorf("%w: bad value %q for %s at line %d", ErrInvalidConfig, val, key, line)
	}
	parseFloat := func(dst *float64) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return badValue()
		}
		*dst = f
		return nil
	}
	parseInt := func(dst *int) error {
		n, err := strconv.Atoi(val)
		if err != nil {
			return badValue()
		}
		*dst = n
		return nil
	}
	parseFlag := func(dst *Flag) error {
		switch val {
		case "0", "false", "no":
			*dst = false
		case "1", "true", "yes":
			*dst = true
		default:
			return badValue()
		}
		return nil
	}

	switch key {
	case "inv_type":
		s.InvType = val
		return nil
	case "kernel_type":
		s.KernelType = val
		return nil
	case "adaptive":
		return parseFlag(&s.Adaptive)
	case "correct":
		return parseFlag(&s.Correct)
	case "allow_partial":
		return parseFlag(&s.AllowPartial)
	case "rmin":
		return parseFloat(&s.Rmin)
	case "eabs":
		return parseFloat(&s.Eabs)
	case "atol":
		return parseFloat(&s.Atol)
	case "n_nodes":
		return parseInt(&s.NNodes)
	case "n_ab":
		return parseInt(&s.NAb)
	default:
		return fmt.Errorf("%w: unknown key %q at line %d", ErrInvalidConfig, key, line)
	}
}

// String renders the tree back in dictionary form with canonical key
// order and four-space indentation. Zero-valued parameters are omitted,
// so a parsed tree round-trips up to defaulted entries.
func (c Config) String() string {
	var b strings.Builder
	c.write(&b, 0)
	return b.String()
}

func (c Config) write(b *strings.Builder, depth int) {
	ind := strings.Repeat("    ", depth)
	fmt.Fprintf(b, "%sqbmm_type %s;\n", ind, c.Type)
	fmt.Fprintf(b, "%sqbmm_setup\n%s{\n", ind, ind)
	c.Setup.write(b, depth+1)
	fmt.Fprintf(b, "%s}\n", ind)
}

func (s Setup) write(b *strings.Builder, depth int) {
	ind := strings.Repeat("    ", depth)
	put := func(key, val string) {
		fmt.Fprintf(b, "%s%s %s;\n", ind, key, val)
	}
	if s.InvType != "" {
		put("inv_type", s.InvType)
	}
	if s.Adaptive {
		put("adaptive", "1")
	}
	if s.Correct {
		put("correct", "1")
	}
	if s.Rmin != 0 {
		put("rmin", strconv.FormatFloat(s.Rmin, 'g', -1, 64))
	}
	if s.Eabs != 0 {
		put("eabs", strconv.FormatFloat(s.Eabs, 'g', -1, 64))
	}
	if s.NNodes != 0 {
		put("n_nodes", strconv.Itoa(s.NNodes))
	}
	if s.KernelType != "" {
		put("kernel_type", s.KernelType)
	}
	if s.NAb != 0 {
		put("n_ab", strconv.Itoa(s.NAb))
	}
	if s.Atol != 0 {
		put("atol", strconv.FormatFloat(s.Atol, 'g', -1, 64))
	}
	if s.AllowPartial {
		put("allow_partial", "1")
	}
	if len(s.Config1D) > 0 {
		fmt.Fprintf(b, "%sconfig1d\n%s(\n", ind, ind)
		for _, child := range s.Config1D {
			fmt.Fprintf(b, "%s    {\n", ind)
			child.write(b, depth+2)
			fmt.Fprintf(b, "%s    };\n", ind)
		}
		fmt.Fprintf(b, "%s);\n", ind)
	}
}
