package db

import (
	"strings"

	"github.com/verist/staffdb/internal/model"
)

// FilterEmployeesByTokens returns the subset of `employees` that match all
// tokens. Matching is case-insensitive and tests first name, last name, and
// email for substring containment. If `tokens` is nil or empty, the original
// slice is returned.
func FilterEmployeesByTokens(employees []model.Employee, tokens []string) []model.Employee {
	if len(tokens) == 0 {
		return employees
	}
	out := make([]model.Employee, 0, len(employees))
	for _, e := range employees {
		first := strings.ToLower(e.FirstName)
		last := strings.ToLower(e.LastName)
		email := strings.ToLower(e.Email)

		matchedAll := true
		for _, tok := range tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			if !strings.Contains(first, tok) && !strings.Contains(last, tok) && !strings.Contains(email, tok) {
				matchedAll = false
				break
			}
		}
		if matchedAll {
			out = append(out, e)
		}
	}
	return out
}
