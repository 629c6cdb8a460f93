package goquery

import (
	"strings"
	"sync"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Ensure Engine implements studipsync.Selector and studipsync.SelectorValidator.
var (
	_ studipsync.Selector          = (*Engine)(nil)
	_ studipsync.SelectorValidator = (*Engine)(nil)
)

const whitespace = " \t\n\f\r"

// step applies one compiled compound selector through a combinator.
type step struct {
	combinator byte // ' ' descendant, '>' child, '+' adjacent sibling, '~' general sibling
	matcher    cascadia.Selector
}

// Engine resolves selectors against Nodes created by this package.
// Compiled selectors are cached; an Engine is safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	plans map[string][]step
}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{plans: make(map[string][]step)}
}

// Select returns the matches of selector within context in document order.
// A selector starting with a combinator (">tbody>tr") is anchored to
// context; any other selector matches descendants of context. Contexts not
// created by this package and invalid selectors match nothing.
func (e *Engine) Select(selector string, context studipsync.Node) []studipsync.Node {
	n, ok := context.(*Node)
	if !ok || n == nil || n.sel == nil {
		return nil
	}

	plan, err := e.plan(selector)
	if err != nil {
		return nil
	}

	found := apply(n.sel, plan)
	nodes := make([]studipsync.Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s, base: n.base})
	})
	return nodes
}

// Validate returns EINVALID if the selector cannot be compiled.
func (e *Engine) Validate(selector string) error {
	_, err := e.plan(selector)
	return err
}

func (e *Engine) plan(selector string) ([]step, error) {
	e.mu.Lock()
	plan, ok := e.plans[selector]
	e.mu.Unlock()
	if ok {
		return plan, nil
	}

	plan, err := compile(selector)
	if err != nil {
		return nil, studipsync.Errorf(studipsync.EINVALID, "invalid selector %q: %v", selector, err)
	}

	e.mu.Lock()
	e.plans[selector] = plan
	e.mu.Unlock()
	return plan, nil
}

func apply(sel *goquery.Selection, plan []step) *goquery.Selection {
	for _, st := range plan {
		switch st.combinator {
		case '>':
			sel = sel.ChildrenMatcher(st.matcher)
		case '+':
			sel = sel.NextMatcher(st.matcher)
		case '~':
			sel = sel.NextAllMatcher(st.matcher)
		default:
			sel = sel.FindMatcher(st.matcher)
		}
	}
	return sel
}

// compile turns a selector into steps. Unscoped selectors compile to a
// single descendant step handled entirely by cascadia. Scoped selectors are
// split into compounds, one step each, so every compound after the context
// is matched inside the context and never against its ancestors.
func compile(selector string) ([]step, error) {
	s := strings.Trim(selector, whitespace)
	if s == "" {
		return nil, errEmptySelector
	}

	if !isCombinator(s[0]) {
		m, err := cascadia.Compile(s)
		if err != nil {
			return nil, err
		}
		return []step{{combinator: ' ', matcher: m}}, nil
	}

	var plan []step
	combinator, rest := s[0], s[1:]
	for {
		rest = strings.TrimLeft(rest, whitespace)
		if rest == "" {
			return nil, errDanglingCombinator
		}

		compound, tail, err := splitCompound(rest)
		if err != nil {
			return nil, err
		}
		m, err := cascadia.Compile(compound)
		if err != nil {
			return nil, err
		}
		plan = append(plan, step{combinator: combinator, matcher: m})

		trimmed := strings.TrimLeft(tail, whitespace)
		switch {
		case trimmed == "":
			return plan, nil
		case isCombinator(trimmed[0]):
			combinator, rest = trimmed[0], trimmed[1:]
		default:
			combinator, rest = ' ', trimmed
		}
	}
}

// splitCompound returns the leading compound selector of s and the
// remainder starting at the next top-level combinator.
func splitCompound(s string) (compound, tail string, err error) {
	var (
		depth int
		quote byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
		case depth > 0:
		case c == ',':
			return "", "", errScopedGroup
		case isCombinator(c) || strings.IndexByte(whitespace, c) >= 0:
			return s[:i], s[i:], nil
		}
	}
	if quote != 0 || depth != 0 {
		return "", "", errUnbalanced
	}
	return s, "", nil
}

func isCombinator(c byte) bool {
	return c == '>' || c == '+' || c == '~'
}
