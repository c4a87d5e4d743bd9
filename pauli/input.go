package pauli

import "strings"

// Input is the tagged variant OneString(s) | ManyStrings([]s) spec §9
// calls for: callers hand either a comma-separated string or an explicit
// slice, and the parser normalizes eagerly instead of sniffing types at
// each call site.
type Input struct {
	single   string
	multi    []string
	isSingle bool
}

// One wraps a single, possibly comma-separated, string.
func One(s string) Input { return Input{single: s, isSingle: true} }

// Many wraps an explicit list of strings.
func Many(ss []string) Input { return Input{multi: ss} }

// Strings normalizes the variant into a flat slice, splitting a single
// input on commas.
func (in Input) Strings() []string {
	if in.isSingle {
		parts := strings.Split(in.single, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return in.multi
}

// ParseRows parses every element of in as a stabilizer row. If n is 0 the
// width is inferred from the first element; every subsequent element must
// match that width or a *ParseError reporting the length mismatch is
// returned.
func ParseRows(in Input, n int) ([]Row, int, error) {
	ss := in.Strings()
	if len(ss) == 0 {
		return nil, 0, &ParseError{Why: "no stabilizers given"}
	}
	width := n
	rows := make([]Row, 0, len(ss))
	for _, s := range ss {
		r, err := ParseRow(s, width)
		if err != nil {
			return nil, 0, err
		}
		if width == 0 {
			width = r.Len()
		}
		rows = append(rows, r)
	}
	return rows, width, nil
}

// CanonicalStrings renders a slice of rows back to their canonical string
// form, one per row.
func CanonicalStrings(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.String()
	}
	return out
}
