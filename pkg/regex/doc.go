// Package regex implements a small backtracking regular-expression engine.
//
// It supports literals, the wildcard `.`, the `\d` and `\w` escape classes,
// bracket character classes (with negation and ranges), capturing groups
// with `|` alternation, back-references `\1`-`\9`, the `^`/`$` anchors, and
// the `?`/`+`/`*` quantifiers. It does not support lookarounds, non-capturing
// groups, lazy quantifiers, `{m,n}` repetition, or case-insensitive matching.
package regex
