package source

import "strings"

// Inline directives let source files switch rules off without touching
// configuration. They live inside comments:
//
//	// leapstyle:disable-line no-semicolons
//	// leapstyle:disable-next-line
//	// leapstyle:disable line-length no-todo-comment
//	// leapstyle:enable line-length
//
// Every token after the directive is read as a rule ID; no IDs means all
// rules. A region disable takes effect on its own line and runs to the
// matching enable or end of file. Enable with IDs lifts only those IDs; it
// cannot narrow a blanket disable.
const directivePrefix = "leapstyle:"

// ruleSet tracks which rules a directive suppresses.
type ruleSet struct {
	all bool
	ids map[string]struct{}
}

func (s *ruleSet) add(ids []string) {
	if len(ids) == 0 {
		s.all = true
		return
	}
	if s.ids == nil {
		s.ids = make(map[string]struct{}, len(ids))
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *ruleSet) remove(ids []string) {
	if len(ids) == 0 {
		s.all = false
		s.ids = nil
		return
	}
	for _, id := range ids {
		delete(s.ids, id)
	}
}

func (s *ruleSet) merge(other *ruleSet) {
	if other == nil {
		return
	}
	if other.all {
		s.all = true
	}
	for id := range other.ids {
		if s.ids == nil {
			s.ids = make(map[string]struct{})
		}
		s.ids[id] = struct{}{}
	}
}

func (s *ruleSet) clone() *ruleSet {
	c := &ruleSet{all: s.all}
	if len(s.ids) > 0 {
		c.ids = make(map[string]struct{}, len(s.ids))
		for id := range s.ids {
			c.ids[id] = struct{}{}
		}
	}
	return c
}

func (s *ruleSet) empty() bool {
	return s == nil || (!s.all && len(s.ids) == 0)
}

func (s *ruleSet) covers(id string) bool {
	if s == nil {
		return false
	}
	if s.all {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// directive is one parsed leapstyle comment.
type directive struct {
	action string // "disable", "enable", "disable-line", "disable-next-line"
	ids    []string
}

// parseDirective extracts the first leapstyle directive from a line's
// comment text, if any.
func parseDirective(l Line) (directive, bool) {
	comment := l.Comment()
	idx := strings.Index(comment, directivePrefix)
	if idx < 0 {
		return directive{}, false
	}

	fields := strings.Fields(comment[idx:])
	if len(fields) == 0 {
		return directive{}, false
	}

	action := strings.TrimPrefix(fields[0], directivePrefix)
	switch action {
	case "disable", "enable", "disable-line", "disable-next-line":
		return directive{action: action, ids: fields[1:]}, true
	default:
		return directive{}, false
	}
}

// buildSuppressions resolves all directives into a per-line suppression
// table. Lines without suppressions have no entry.
func buildSuppressions(lines []Line) map[int]*ruleSet {
	sup := make(map[int]*ruleSet)
	region := &ruleSet{}
	var pending *ruleSet // from a disable-next-line on the previous line

	for _, l := range lines {
		var thisLine, nextLine *ruleSet

		if d, ok := parseDirective(l); ok {
			switch d.action {
			case "disable":
				region.add(d.ids)
			case "enable":
				region.remove(d.ids)
			case "disable-line":
				thisLine = &ruleSet{}
				thisLine.add(d.ids)
			case "disable-next-line":
				nextLine = &ruleSet{}
				nextLine.add(d.ids)
			}
		}

		eff := region.clone()
		eff.merge(thisLine)
		eff.merge(pending)
		if !eff.empty() {
			sup[l.Num] = eff
		}

		pending = nextLine
	}

	return sup
}
