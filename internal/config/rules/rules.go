// Package rules implements the ordered condition lists that override
// per-window configuration.
//
// A List holds user-authored rules in the order the configuration supplied
// them. Evaluation walks the list head to tail and the first matching rule
// wins; later rules are never consulted. Rule order is load-bearing: a
// configuration that lists specific overrides before catch-alls relies on
// the earlier entries being checked first.
//
// Pattern compilation is a pluggable capability. The resolution engine only
// requires that a compiled pattern can answer Match(win.Info); the Regex
// compiler is the default, and hosts with their own condition language plug
// in a Compiler of their own.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lumawm/luma/internal/win"
)

// Matcher decides whether a rule applies to a window. Matchers are compiled
// from pattern text and treated as opaque by the resolution engine.
type Matcher interface {
	Match(w win.Info) bool
}

// Compiler turns pattern text into a Matcher. A Compiler must either return
// a usable Matcher or an error describing why the pattern is invalid; it
// must not return both.
type Compiler func(pattern string) (Matcher, error)

// Rule is one entry in a condition list: a compiled matcher plus an
// optional payload applied when the rule matches. Payload is nil for pure
// include/exclude lists.
type Rule struct {
	// Pattern is the original pattern text, kept for diagnostics.
	Pattern string

	// Matcher is the compiled pattern.
	Matcher Matcher

	// Payload is the value the rule applies on match, if any.
	Payload *float64
}

// List is an append-only ordered condition list. The zero value is not
// usable; construct with New. A List is exclusively owned by the option set
// that references it and is never shared between lists.
type List struct {
	compile Compiler
	rules   []Rule
}

// New creates an empty list using the given compiler. A nil compiler
// selects Regex.
func New(compile Compiler) *List {
	if compile == nil {
		compile = Regex
	}
	return &List{compile: compile}
}

// Add compiles pattern and appends the resulting rule. On compile failure
// the list is left unmodified and the returned error names the offending
// pattern.
func (l *List) Add(pattern string) error {
	return l.add(pattern, nil)
}

// AddWithPayload compiles pattern and appends a rule carrying payload.
func (l *List) AddWithPayload(pattern string, payload float64) error {
	return l.add(pattern, &payload)
}

// AddOpacityRule parses an opacity rule of the form "NN:pattern", where NN
// is an integer percentage in [0, 100], and appends it with the percentage
// converted to a [0, 1] opacity payload.
func (l *List) AddOpacityRule(raw string) error {
	percent, pattern, ok := strings.Cut(raw, ":")
	if !ok {
		return fmt.Errorf("opacity rule %q: missing ':' separator", raw)
	}
	n, err := strconv.Atoi(percent)
	if err != nil {
		return fmt.Errorf("opacity rule %q: invalid opacity %q", raw, percent)
	}
	if n < 0 || n > 100 {
		return fmt.Errorf("opacity rule %q: opacity %d out of range [0, 100]", raw, n)
	}
	return l.add(pattern, ptr(float64(n)/100))
}

func (l *List) add(pattern string, payload *float64) error {
	m, err := l.compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	l.rules = append(l.rules, Rule{Pattern: pattern, Matcher: m, Payload: payload})
	return nil
}

// Match returns the first rule that matches w, in list order.
func (l *List) Match(w win.Info) (Rule, bool) {
	if l == nil {
		return Rule{}, false
	}
	for _, r := range l.rules {
		if r.Matcher.Match(w) {
			return r, true
		}
	}
	return Rule{}, false
}

// Matches reports whether any rule matches w. It is the include/exclude
// form of Match.
func (l *List) Matches(w win.Info) bool {
	_, ok := l.Match(w)
	return ok
}

// Len returns the number of rules in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.rules)
}

// Patterns returns the pattern text of every rule in list order.
func (l *List) Patterns() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.rules))
	for i, r := range l.rules {
		out[i] = r.Pattern
	}
	return out
}

// Regex is the default pattern compiler. The pattern is a Go regular
// expression matched against the window's class, instance, name, and role.
func Regex(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return regexMatcher{re: re}, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Match(w win.Info) bool {
	return m.re.MatchString(w.Class) ||
		m.re.MatchString(w.Instance) ||
		m.re.MatchString(w.Name) ||
		m.re.MatchString(w.Role)
}

func ptr(f float64) *float64 { return &f }
