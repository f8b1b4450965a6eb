package mdpage

import (
	"encoding/json"
	"strings"
)

// MetadataScript builds a script element that updates the page's <meta>
// tags, one statement per tag in order:
//
//	document.getElementsByTagName("meta")["description"].content = "...";
//
// Names and contents are emitted as JSON strings with <, > and & escaped,
// so no value can close the element. An empty list yields "".
func MetadataScript(meta []MetaTag) string {
	if len(meta) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<script>")
	for _, m := range meta {
		sb.WriteString(`document.getElementsByTagName("meta")[`)
		sb.WriteString(jsString(m.Name))
		sb.WriteString(`].content = `)
		sb.WriteString(jsString(m.Content))
		sb.WriteString(";\n")
	}
	sb.WriteString("</script>")
	return sb.String()
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Strings always marshal.
		return `""`
	}
	return string(b)
}
