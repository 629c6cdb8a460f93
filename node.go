package studipsync

// Node is a parsed document node as seen by the extractors.
type Node interface {
	// Text returns the node's rendered text. Runs of whitespace are
	// collapsed; callers trim where a field requires it.
	Text() string

	// Href returns the absolute link target of an anchor-like node.
	// Returns "" if the node carries no href.
	Href() string
}

// Selector resolves CSS-style selectors against a parsed document.
// Extractors discover every node through a Selector and never walk the tree
// themselves.
type Selector interface {
	// Select returns the nodes matching selector scoped to context, in
	// document order. A selector starting with a child combinator (">td")
	// is anchored to context itself. Returns an empty slice if nothing
	// matches.
	Select(selector string, context Node) []Node
}

// SelectorValidator is implemented by selector engines that can check
// selector syntax before a pass. Extractors validate their configuration
// against it when available.
type SelectorValidator interface {
	// Validate returns EINVALID if the selector cannot be compiled.
	Validate(selector string) error
}
