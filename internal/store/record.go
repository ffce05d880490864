// Package store persists vacancy records as one CSV table per region. The
// column set and header names are a format contract: readers resolve columns
// by header name, but the names themselves must match exactly.
package store

import (
	"fmt"
	"strconv"
	"strings"
)

// SalaryNotSpecified is the table cell written when a posting carries no
// salary at all. Distinct from a salary with one missing bound.
const SalaryNotSpecified = "Не указана"

// noBound marks a single absent bound inside an otherwise present salary,
// e.g. "None - 150000 RUR".
const noBound = "None"

// LinkNotProvided is the link cell for user-contributed records.
const LinkNotProvided = "не указана"

// Salary is a pair of optional bounds plus a currency code. A nil *Salary on
// a Record means the posting specified no salary at all.
type Salary struct {
	From     *int
	To       *int
	Currency string
}

// Record is one vacancy posting or one user-contributed data point.
// Profession and Experience are always drawn from the taxonomy enumerations
// at write time.
type Record struct {
	Title        string
	Link         string
	Salary       *Salary
	Location     string
	Requirements string
	Profession   string
	Experience   string
}

// FormatSalary renders a salary as table text: "80000 - 120000 RUR",
// "None - 150000 RUR" for a missing bound, "Не указана" for no salary.
func FormatSalary(s *Salary) string {
	if s == nil {
		return SalaryNotSpecified
	}
	return strings.TrimSpace(fmt.Sprintf("%s - %s %s", boundText(s.From), boundText(s.To), s.Currency))
}

func boundText(b *int) string {
	if b == nil {
		return noBound
	}
	return strconv.Itoa(*b)
}

// ParseSalary is the inverse of FormatSalary. Unparseable text, the
// not-specified sentinel and an empty cell all come back nil — a record with
// such a cell simply contributes nothing to salary statistics.
func ParseSalary(text string) *Salary {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, SalaryNotSpecified) {
		return nil
	}
	parts := strings.Fields(text)
	if len(parts) < 3 || parts[1] != "-" {
		return nil
	}

	from, okFrom := parseBound(parts[0])
	to, okTo := parseBound(parts[2])
	if !okFrom || !okTo {
		return nil
	}

	s := &Salary{From: from, To: to}
	if len(parts) >= 4 {
		s.Currency = parts[3]
	}
	return s
}

func parseBound(text string) (*int, bool) {
	if text == noBound {
		return nil, true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// Midpoint returns (from+to)/2. Valid only when Contributes is true.
func (s *Salary) Midpoint() float64 {
	return float64(*s.From+*s.To) / 2
}

// Contributes reports whether both bounds are present, i.e. whether the
// salary counts toward aggregate statistics.
func (s *Salary) Contributes() bool {
	return s != nil && s.From != nil && s.To != nil
}
