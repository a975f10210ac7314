package sqldialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Translator rewrites queries from the shared SQLite-style surface into the
// target dialect. For SQLite the input is returned unchanged. For PostgreSQL
// it rewrites, in one ordered pass:
//
//   - `?` placeholders into `$1..$N`
//   - `GROUP_CONCAT(expr, sep)` into `string_agg(expr, sep ORDER BY expr)`,
//     pinning the concatenation order the two engines would otherwise choose
//     differently
//   - `INSERT OR IGNORE INTO t` into `INSERT INTO t ... ON CONFLICT (col)
//     DO NOTHING`, keyed on the table's declared unique column
//
// Tokens inside single-quoted strings, double-quoted identifiers, `--` line
// comments, and `/* */` block comments are never rewritten.
type Translator struct {
	dialect   Dialect
	conflicts map[string]string
}

// NewTranslator builds a translator for the given dialect. conflictKeys maps
// table name to the unique column used when rewriting INSERT OR IGNORE;
// lookups are case-insensitive.
func NewTranslator(dialect Dialect, conflictKeys map[string]string) *Translator {
	conflicts := make(map[string]string, len(conflictKeys))
	for table, column := range conflictKeys {
		conflicts[strings.ToLower(table)] = column
	}
	return &Translator{dialect: dialect, conflicts: conflicts}
}

func (t *Translator) Dialect() Dialect {
	return t.dialect
}

// Translate rewrites query for the translator's dialect.
func (t *Translator) Translate(query string) (string, error) {
	if t.dialect != Postgres {
		return query, nil
	}
	argn := 0
	return t.rewrite(query, &argn)
}

func (t *Translator) rewrite(sql string, argn *int) (string, error) {
	var out strings.Builder
	out.Grow(len(sql) + 32)

	// Unique column of a pending INSERT OR IGNORE; flushed as an ON
	// CONFLICT clause at the statement boundary.
	pending := ""

	for i := 0; i < len(sql); {
		c := sql[i]
		switch {
		case c == '\'':
			j := scanString(sql, i)
			out.WriteString(sql[i:j])
			i = j
		case c == '"':
			j := scanQuotedIdent(sql, i)
			out.WriteString(sql[i:j])
			i = j
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			j := scanLineComment(sql, i)
			out.WriteString(sql[i:j])
			i = j
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			j := scanBlockComment(sql, i)
			out.WriteString(sql[i:j])
			i = j
		case c == '?':
			*argn++
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(*argn))
			i++
		case c == ';':
			if pending != "" {
				out.WriteString(" ON CONFLICT (")
				out.WriteString(pending)
				out.WriteString(") DO NOTHING")
				pending = ""
			}
			out.WriteByte(';')
			i++
		case isIdentStart(c):
			j := scanIdent(sql, i)
			word := sql[i:j]

			if strings.EqualFold(word, "GROUP_CONCAT") && peekByte(sql, j) == '(' {
				replaced, next, err := t.rewriteGroupConcat(sql, j, argn)
				if err != nil {
					return "", err
				}
				out.WriteString(replaced)
				i = next
				continue
			}

			if strings.EqualFold(word, "INSERT") {
				if next, table, ok := matchOrIgnoreInto(sql, j); ok {
					column, declared := t.conflicts[strings.ToLower(table)]
					if !declared {
						return "", fmt.Errorf("sqldialect: no unique column declared for table %q", table)
					}
					out.WriteString("INSERT INTO ")
					out.WriteString(table)
					pending = column
					i = next
					continue
				}
			}

			out.WriteString(word)
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}

	if pending != "" {
		out.WriteString(" ON CONFLICT (")
		out.WriteString(pending)
		out.WriteString(") DO NOTHING")
	}

	return out.String(), nil
}

// rewriteGroupConcat consumes the call's argument list starting at the first
// byte at or after `from` (whitespace, then the opening paren) and emits the
// string_agg equivalent. Returns the rewritten call and the position just
// past the closing paren.
func (t *Translator) rewriteGroupConcat(sql string, from int, argn *int) (string, int, error) {
	open := from
	for open < len(sql) && isSpace(sql[open]) {
		open++
	}
	if open >= len(sql) || sql[open] != '(' {
		return "", 0, fmt.Errorf("sqldialect: GROUP_CONCAT without argument list")
	}

	end, ok := matchParen(sql, open)
	if !ok {
		return "", 0, fmt.Errorf("sqldialect: unterminated GROUP_CONCAT call")
	}

	body := sql[open+1 : end]
	first, rest, hasSep := splitFirstArg(body)

	// Placeholders inside the arguments keep their textual order; the ORDER
	// BY clause reuses the already-numbered first argument, so it never
	// consumes additional parameters.
	firstOut, err := t.rewrite(first, argn)
	if err != nil {
		return "", 0, err
	}

	var call strings.Builder
	call.WriteString("string_agg(")
	call.WriteString(firstOut)
	if hasSep {
		restOut, err := t.rewrite(rest, argn)
		if err != nil {
			return "", 0, err
		}
		call.WriteByte(',')
		call.WriteString(restOut)
	} else {
		call.WriteString(", ','")
	}
	call.WriteString(" ORDER BY ")
	call.WriteString(strings.TrimSpace(firstOut))
	call.WriteByte(')')

	return call.String(), end + 1, nil
}

// matchOrIgnoreInto checks whether the tokens following an INSERT keyword
// read `OR IGNORE INTO <table>`. On a match it returns the position just
// past the table name and the table name as written.
func matchOrIgnoreInto(sql string, from int) (int, string, bool) {
	pos := from
	for _, keyword := range []string{"OR", "IGNORE", "INTO"} {
		start := skipSpace(sql, pos)
		end := scanIdent(sql, start)
		if end == start || !strings.EqualFold(sql[start:end], keyword) {
			return 0, "", false
		}
		pos = end
	}

	start := skipSpace(sql, pos)
	end := scanIdent(sql, start)
	if end == start {
		return 0, "", false
	}
	return end, sql[start:end], true
}

// splitFirstArg splits an argument list body at its first top-level comma.
func splitFirstArg(body string) (first, rest string, hasSep bool) {
	depth := 0
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == '\'':
			i = scanString(body, i)
		case c == '"':
			i = scanQuotedIdent(body, i)
		case c == '-' && i+1 < len(body) && body[i+1] == '-':
			i = scanLineComment(body, i)
		case c == '/' && i+1 < len(body) && body[i+1] == '*':
			i = scanBlockComment(body, i)
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			i++
		case c == ',' && depth == 0:
			return body[:i], body[i+1:], true
		default:
			i++
		}
	}
	return body, "", false
}

// matchParen returns the index of the parenthesis closing the one at open.
func matchParen(sql string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(sql); {
		switch c := sql[i]; {
		case c == '\'':
			i = scanString(sql, i)
		case c == '"':
			i = scanQuotedIdent(sql, i)
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			i = scanLineComment(sql, i)
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			i = scanBlockComment(sql, i)
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			if depth == 0 {
				return i, true
			}
			i++
		default:
			i++
		}
	}
	return 0, false
}

// scanString advances past a single-quoted literal, honoring '' escapes.
func scanString(s string, start int) int {
	i := start + 1
	for i < len(s) {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s)
}

// scanQuotedIdent advances past a double-quoted identifier, honoring ""
// escapes.
func scanQuotedIdent(s string, start int) int {
	i := start + 1
	for i < len(s) {
		if s[i] == '"' {
			if i+1 < len(s) && s[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s)
}

func scanLineComment(s string, start int) int {
	i := start + 2
	for i < len(s) && s[i] != '\n' {
		i++
	}
	if i < len(s) {
		i++
	}
	return i
}

func scanBlockComment(s string, start int) int {
	i := start + 2
	for i+1 < len(s) {
		if s[i] == '*' && s[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(s)
}

func scanIdent(s string, start int) int {
	i := start
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	return i
}

func skipSpace(s string, start int) int {
	i := start
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func peekByte(s string, from int) byte {
	i := skipSpace(s, from)
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
