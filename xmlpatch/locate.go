package xmlpatch

import "strings"

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	elementOpen  = "<add"
	elementClose = "/>"
)

// Attr is an attribute name and its literal (unescaped) value.
type Attr struct {
	Name  string
	Value string
}

// String returns the attribute as it appears in markup: name="value".
func (a Attr) String() string {
	return a.Name + `="` + a.Value + `"`
}

// Property bounds a single <add .../> element.
// Start is the index of "<add" and End is the index just past "/>".
type Property struct {
	Start int
	End   int
}

// Text returns the element's markup from content.
func (p Property) Text(content string) string {
	return content[p.Start:p.End]
}

// Locate finds the <add/> element inside the first container element that
// carries the identifying attribute outside of any XML comment.
//
// The boolean result is false if the container is missing, the identifying
// attribute does not occur uncommented between the container's opening and
// closing tags, or the enclosing element has no "<add" before it or no "/>"
// after it.
func Locate(content, container string, identify Attr) (Property, bool) {
	lower := strings.Index(content, "<"+container)
	upper := strings.Index(content, "</"+container+">")

	if lower < 0 || upper < 0 {
		return Property{}, false
	}

	at := FirstUncommented(content, identify.String(), lower, upper)
	if at < 0 {
		return Property{}, false
	}

	start := strings.LastIndex(content[:at], elementOpen)
	if start < 0 {
		return Property{}, false
	}

	end := strings.Index(content[at:], elementClose)
	if end < 0 {
		return Property{}, false
	}

	return Property{Start: start, End: at + end + len(elementClose)}, true
}

// FirstUncommented returns the index of the first occurrence of needle that
// starts in the closed range [from, to] and does not lie inside an XML
// comment, or -1 if there is none.
//
// An occurrence is inside a comment when the nearest "<!--" before it comes
// after the nearest "-->" before it. Comments are assumed to be well formed
// and not nested.
func FirstUncommented(content, needle string, from, to int) int {
	if needle == "" || from < 0 {
		return -1
	}

	for from <= to && from <= len(content) {
		i := strings.Index(content[from:], needle)
		if i < 0 {
			return -1
		}

		at := from + i
		if at > to {
			return -1
		}

		if !commented(content, at) {
			return at
		}

		from = at + len(needle)
	}

	return -1
}

// commented reports whether index at lies inside an unclosed comment.
func commented(content string, at int) bool {
	open := strings.LastIndex(content[:at], commentOpen)
	if open < 0 {
		return false
	}

	return open > strings.LastIndex(content[:at], commentClose)
}
