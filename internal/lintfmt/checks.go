package lintfmt

import "strings"

// moduleErrorSentinel marks engine-level messages (e.g. a file that failed
// to parse) that have no meaningful source line to highlight.
const moduleErrorSentinel = "Invalid module"

// Classification is the fixed rule-identifier configuration deciding which
// severity bucket a diagnostic lands in and which rules never render a
// snippet. It is built once at startup and injected into the Aggregator;
// nothing in the core consults ambient global state.
type Classification struct {
	blocking  map[string]struct{}
	noSnippet map[string]struct{}
}

// NewClassification builds a Classification from explicit rule sets.
// Rules absent from the blocking set fall into the style bucket.
func NewClassification(blocking, noSnippet []string) Classification {
	c := Classification{
		blocking:  make(map[string]struct{}, len(blocking)),
		noSnippet: make(map[string]struct{}, len(noSnippet)),
	}
	for _, id := range blocking {
		c.blocking[id] = struct{}{}
	}
	for _, id := range noSnippet {
		c.noSnippet[id] = struct{}{}
	}
	return c
}

// Blocking reports whether the diagnostic belongs to the errors bucket.
// Both the rule identifier and the symbolic name are checked, so either
// form may appear in the configured set.
func (c Classification) Blocking(d Diagnostic) bool {
	if _, ok := c.blocking[d.ID]; ok {
		return true
	}
	_, ok := c.blocking[d.Symbol]
	return ok
}

// SnippetSuppressed reports whether the diagnostic must render an empty
// snippet: its rule is in the no-snippet set, or its message is an
// engine-level module error.
func (c Classification) SnippetSuppressed(d Diagnostic) bool {
	if _, ok := c.noSnippet[d.Symbol]; ok {
		return true
	}
	if _, ok := c.noSnippet[d.ID]; ok {
		return true
	}
	return strings.HasPrefix(d.Message, moduleErrorSentinel)
}

// DefaultClassification returns the stock rule classification: checks that
// indicate genuine bugs or forbidden constructs are blocking, everything
// else is advisory style feedback.
func DefaultClassification() Classification {
	return NewClassification(defaultBlockingChecks, defaultNoSnippet)
}

// Rules without a source code line worth highlighting.
var defaultNoSnippet = []string{
	"invalid-name",
	"unknown-option-value",
	"module-name-violation",
	"config-parse-error",
	"useless-option-value",
	"unrecognized-option",
}

// Checks reported as blocking errors rather than style issues.
var defaultBlockingChecks = []string{
	"used-before-assignment",
	"undefined-variable",
	"undefined-loop-variable",
	"not-in-loop",
	"return-outside-function",
	"duplicate-key",
	"unreachable",
	"pointless-statement",
	"pointless-string-statement",
	"no-member",
	"not-callable",
	"assignment-from-no-return",
	"assignment-from-none",
	"no-value-for-parameter",
	"too-many-function-args",
	"invalid-sequence-index",
	"invalid-slice-index",
	"invalid-slice-step",
	"invalid-unary-operand-type",
	"unsupported-binary-operation",
	"unsupported-membership-test",
	"unsubscriptable-object",
	"unbalanced-tuple-unpacking",
	"unbalanced-dict-unpacking",
	"unpacking-non-sequence",
	"function-redefined",
	"duplicate-argument-name",
	"import-error",
	"no-name-in-module",
	"non-parent-init-called",
	"access-member-before-definition",
	"method-hidden",
	"unexpected-special-method-signature",
	"inherit-non-class",
	"duplicate-except",
	"bad-except-order",
	"raising-bad-type",
	"raising-non-exception",
	"catching-non-exception",
	"bad-indentation",
	"E0001",
	"unexpected-keyword-arg",
	"not-an-iterable",
	"nonexistent-operator",
	"invalid-length-returned",
	"abstract-method",
	"self-cls-assignment",
	"dict-iter-missing-items",
	"super-without-brackets",
	"modified-iterating-list",
	"modified-iterating-dict",
	"modified-iterating-set",
	"missing-return-statement",
	"invalid-range-index",
	"one-iteration",
	"possibly-undefined",
	"incompatible-argument-type",
	"incompatible-assignment",
	"list-item-type-mismatch",
	"unsupported-operand-types",
	"union-attr-error",
	"dict-item-type-mismatch",
	"forbidden-import",
	"forbidden-python-syntax",
	"forbidden-top-level-code",
}
