// Package assemble fills a markdown template with the fields of a Character.
//
// Templates use brace placeholders: {name} is replaced by the field value and
// {{ / }} produce literal braces. Referencing a field that does not exist is a
// core.FormatError; nothing is substituted by default.
package assemble

import (
	"strings"

	"github.com/gaurav-prasanna/charsheet/core"
)

const emptyAliasList = "  - "

// Fields maps every placeholder name to its value for c.
func Fields(c *core.Character) map[string]string {
	aliases := AliasList(c.Aliases)
	fields := map[string]string{
		"name":      c.Name,
		"image":     c.Image,
		"aliases":   aliases,
		"nickname":  aliases,
		"wiki_name": c.WikiName,
		"series":    c.WikiName,
		"info_dump": c.InfoDump,
	}
	for _, key := range core.SectionKeys {
		fields[key] = c.Section(key)
	}
	return fields
}

// AliasList renders aliases as an indented markdown list with each alias
// emphasized, or a single empty bullet when there are none.
func AliasList(aliases []string) string {
	if len(aliases) == 0 {
		return emptyAliasList
	}
	lines := make([]string, len(aliases))
	for i, a := range aliases {
		lines[i] = "  - _" + a + "_"
	}
	return strings.Join(lines, "\n")
}

// Format substitutes the fields of c into template.
func Format(template string, c *core.Character) (string, error) {
	return Substitute(template, Fields(c))
}

// Substitute replaces every {field} in template with fields[field].
func Substitute(template string, fields map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &core.FormatError{Reason: "single '{' encountered"}
			}
			field := template[i+1 : i+1+end]
			value, err := lookup(fields, field)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &core.FormatError{Reason: "single '}' encountered"}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

func lookup(fields map[string]string, field string) (string, error) {
	if field == "" {
		return "", &core.FormatError{Reason: "empty placeholder"}
	}
	if strings.ContainsRune(field, '{') {
		return "", &core.FormatError{Field: field, Reason: "unexpected '{' in placeholder"}
	}
	value, ok := fields[field]
	if !ok {
		return "", &core.FormatError{Field: field, Reason: "unknown placeholder"}
	}
	return value, nil
}
