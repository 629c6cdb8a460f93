package goquery

import "errors"

var (
	errEmptySelector      = errors.New("empty selector")
	errDanglingCombinator = errors.New("combinator without selector")
	errScopedGroup        = errors.New("selector groups cannot start with a combinator")
	errUnbalanced         = errors.New("unbalanced brackets or quotes")
)
