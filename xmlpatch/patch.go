package xmlpatch

import "strings"

// Container element names and their attribute pairs.
const (
	AppSettings       = "appSettings"
	ConnectionStrings = "connectionStrings"
)

// UpdateAppSetting sets the value attribute of <add key="key" .../> inside
// <appSettings>.
func UpdateAppSetting(content, key, value string) string {
	return UpdateAttribute(
		content,
		AppSettings,
		Attr{Name: "key", Value: key},
		Attr{Name: "value", Value: value},
	)
}

// UpdateConnectionString sets the connectionString attribute of
// <add name="name" .../> inside <connectionStrings>.
func UpdateConnectionString(content, name, value string) string {
	return UpdateAttribute(
		content,
		ConnectionStrings,
		Attr{Name: "name", Value: name},
		Attr{Name: "connectionString", Value: value},
	)
}

// UpdateAttribute replaces the value of target.Name in the element located by
// [Locate] with target.Value. All other bytes of content are preserved.
//
// The content is returned unchanged when the element cannot be located, the
// element has no target attribute, or the attribute value is unterminated.
func UpdateAttribute(content, container string, identify, target Attr) string {
	prop, ok := Locate(content, container, identify)
	if !ok {
		return content
	}

	start, end, ok := valueSpan(prop.Text(content), target.Name)
	if !ok {
		return content
	}

	start += prop.Start
	end += prop.Start

	if content[start:end] == target.Value {
		return content
	}

	return splice(content, start, end, target.Value)
}

// valueSpan returns the bounds of the quoted value of attribute name within
// element, excluding the quotes.
func valueSpan(element, name string) (start, end int, ok bool) {
	prefix := name + `="`

	i := strings.Index(element, prefix)
	if i < 0 {
		return 0, 0, false
	}

	start = i + len(prefix)

	n := strings.IndexByte(element[start:], '"')
	if n < 0 {
		return 0, 0, false
	}

	return start, start + n, true
}

func splice(s string, start, end int, repl string) string {
	var sb strings.Builder

	sb.Grow(len(s) - (end - start) + len(repl))
	sb.WriteString(s[:start])
	sb.WriteString(repl)
	sb.WriteString(s[end:])

	return sb.String()
}
