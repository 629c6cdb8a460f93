package mock

import studipsync "github.com/N-Coder/studip-sync"

var _ studipsync.Selector = (*Selector)(nil)

// Selector is a mock implementation of studipsync.Selector.
type Selector struct {
	SelectFn func(selector string, context studipsync.Node) []studipsync.Node
}

func (s *Selector) Select(selector string, context studipsync.Node) []studipsync.Node {
	return s.SelectFn(selector, context)
}

var (
	_ studipsync.Selector          = (*ValidatingSelector)(nil)
	_ studipsync.SelectorValidator = (*ValidatingSelector)(nil)
)

// ValidatingSelector is a mock selector that also implements
// studipsync.SelectorValidator.
type ValidatingSelector struct {
	SelectFn   func(selector string, context studipsync.Node) []studipsync.Node
	ValidateFn func(selector string) error
}

func (s *ValidatingSelector) Select(selector string, context studipsync.Node) []studipsync.Node {
	return s.SelectFn(selector, context)
}

func (s *ValidatingSelector) Validate(selector string) error {
	return s.ValidateFn(selector)
}

var _ studipsync.Node = (*Node)(nil)

// Node is a mock implementation of studipsync.Node.
type Node struct {
	TextFn func() string
	HrefFn func() string
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) Href() string {
	return n.HrefFn()
}
