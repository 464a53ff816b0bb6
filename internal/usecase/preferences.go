package usecase

import "strings"

// ParsePreferences converts a comma-separated preference string from the
// signin form into a normalized token list: lowercased, trimmed,
// deduplicated, empty entries dropped. First occurrence order is kept.
func ParsePreferences(raw string) []string {
	if raw == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}

// NormalizePreferences normalizes an already-split token list the same way
// ParsePreferences does. Used at the persistence boundary so stored
// preference sets are always lowercase and deduplicated.
func NormalizePreferences(tokens []string) []string {
	var normalized []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		token := strings.ToLower(strings.TrimSpace(t))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		normalized = append(normalized, token)
	}
	return normalized
}

// normalizeTokenSet builds a lowercase deduplicated set from raw tokens.
// The matcher re-normalizes defensively even though preference sets are
// normalized when stored.
func normalizeTokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		token := strings.ToLower(strings.TrimSpace(t))
		if token == "" {
			continue
		}
		set[token] = true
	}
	return set
}
