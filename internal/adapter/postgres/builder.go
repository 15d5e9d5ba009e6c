package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ILike matches column against a case-insensitive substring of term.
// LIKE wildcards in term are escaped.
func ILike(column, term string) squirrel.Sqlizer {
	return squirrel.ILike{column: "%" + EscapeLike(term) + "%"}
}

// EscapeLike escapes the LIKE metacharacters % and _ and the escape
// character itself.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// OrderBy renders "column ASC|DESC" for a whitelisted column. Unknown keys
// fall back to fallback.
func OrderBy(allowed map[string]string, key, fallback string, desc bool) string {
	col, ok := allowed[key]
	if !ok {
		col = fallback
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
