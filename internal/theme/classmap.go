// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ClassMap renames CSS classes, from the BEM names used by the base
// stylesheet to another convention. The same map is applied to the markup so
// HTML and CSS always agree. A nil map is the identity.
type ClassMap map[string]string

// classToken matches a class selector. The identifier is consumed greedily,
// so a match always covers a whole class name.
var classToken = regexp.MustCompile(`\.(-?[_a-zA-Z][_a-zA-Z0-9-]*)`)

// Class maps a single class name.
func (m ClassMap) Class(name string) string {
	if to, ok := m[name]; ok {
		return to
	}
	return name
}

// Classes maps a space-separated class attribute value.
func (m ClassMap) Classes(attr string) string {
	fields := strings.Fields(attr)
	if m == nil {
		return strings.Join(fields, " ")
	}
	for i, f := range fields {
		fields[i] = m.Class(f)
	}
	return strings.Join(fields, " ")
}

// Rewrite renames class selectors in css. Only selector preludes are
// touched; declaration blocks, comments and strings are copied verbatim.
func (m ClassMap) Rewrite(css string) string {
	if len(m) == 0 {
		return css
	}
	var b strings.Builder
	b.Grow(len(css))
	scan(css, func(seg string, kind segKind) {
		if kind != segPrelude {
			b.WriteString(seg)
			return
		}
		b.WriteString(classToken.ReplaceAllStringFunc(seg, func(tok string) string {
			return "." + m.Class(tok[1:])
		}))
	})
	return b.String()
}

// Validate reports every mapped class that the stylesheet never selects.
func (m ClassMap) Validate(css string) error {
	present := SelectorClasses(css)
	var missing []string
	for from := range m {
		if _, ok := present[from]; !ok {
			missing = append(missing, from)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("class map sources not in stylesheet: %s", strings.Join(missing, ", "))
}

// SelectorClasses returns the set of class names used in the selectors of css.
func SelectorClasses(css string) map[string]struct{} {
	set := make(map[string]struct{})
	scan(css, func(seg string, kind segKind) {
		if kind != segPrelude {
			return
		}
		for _, sub := range classToken.FindAllStringSubmatch(seg, -1) {
			set[sub[1]] = struct{}{}
		}
	})
	return set
}

// At-rules whose block holds further rules rather than declarations.
var groupingAtRules = []string{"@media", "@supports", "@layer", "@container", "@document", "@scope"}

// segKind classifies a segment reported by scan.
type segKind int

const (
	// segPrelude is selector or at-rule text outside any declaration block.
	segPrelude segKind = iota
	// segDecl is one declaration inside a declaration block.
	segDecl
	// segOpaque is a comment, a quoted string or a closing brace.
	segOpaque
)

// scan splits css into segments and reports the kind of each one. Comments
// and quoted strings are always opaque, wherever they appear.
func scan(css string, emit func(seg string, kind segKind)) {
	// Each entry is true when the enclosing block holds declarations.
	var blocks []bool
	inDecl := func() bool { return len(blocks) > 0 && blocks[len(blocks)-1] }

	start, ruleStart := 0, 0
	flush := func(end int) {
		if end > start {
			kind := segPrelude
			if inDecl() {
				kind = segDecl
			}
			emit(css[start:end], kind)
		}
		start = end
	}

	for i := 0; i < len(css); i++ {
		switch c := css[i]; {
		case c == '/' && i+1 < len(css) && css[i+1] == '*':
			flush(i)
			end := strings.Index(css[i+2:], "*/")
			if end < 0 {
				i = len(css)
			} else {
				i += 2 + end + 2
			}
			emit(css[start:i], segOpaque)
			start = i
			i--
		case c == '"' || c == '\'':
			flush(i)
			j := i + 1
			for j < len(css) && css[j] != c {
				if css[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(css) {
				j++
			} else {
				j = len(css)
			}
			emit(css[start:j], segOpaque)
			start = j
			i = j - 1
		case c == '{':
			prelude := css[ruleStart:i]
			flush(i + 1)
			blocks = append(blocks, !isGroupingRule(prelude))
			ruleStart = i + 1
		case c == '}':
			flush(i)
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
			emit("}", segOpaque)
			start, ruleStart = i+1, i+1
		case c == ';':
			flush(i + 1)
			ruleStart = i + 1
		}
	}
	flush(len(css))
}

func isGroupingRule(prelude string) bool {
	prelude = strings.TrimSpace(prelude)
	for strings.HasPrefix(prelude, "/*") {
		end := strings.Index(prelude, "*/")
		if end < 0 {
			return false
		}
		prelude = strings.TrimSpace(prelude[end+2:])
	}
	if !strings.HasPrefix(prelude, "@") {
		return false
	}
	for _, at := range groupingAtRules {
		if strings.HasPrefix(prelude, at) {
			return true
		}
	}
	return false
}
