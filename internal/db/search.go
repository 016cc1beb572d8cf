// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "strings"

// TokenizeSearchQuery breaks a free-text query into the lower-cased words the
// search predicates match against. A query with no words yields nil.
func TokenizeSearchQuery(q string) []string {
	words := strings.Fields(q)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]string, len(words))
	for i, w := range words {
		tokens[i] = strings.ToLower(w)
	}
	return tokens
}
