package repository

import "strings"

// prefixFields qualifies each column in a comma-separated field list with a
// table alias, for use in joined queries
func prefixFields(fields, alias string) string {
	parts := strings.Split(fields, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
