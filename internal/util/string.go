package util

import "strings"

// ReplaceLeadingMention rewrites a bot mention at the start of a message into
// the command prefix, so "<@botid> pick a;b" parses the same as "~pick a;b".
// Returns the input unchanged when the mention is not the first thing in it.
func ReplaceLeadingMention(content, mention, prefix string) string {
	rest, ok := strings.CutPrefix(content, mention)
	if !ok {
		return content
	}
	return prefix + strings.TrimLeft(rest, " ")
}

// SplitCommandLine separates the command token from its argument remainder.
// The remainder keeps its internal spacing; only the gap after the token is
// trimmed.
func SplitCommandLine(content string) (cmd, args string) {
	cmd, args, found := strings.Cut(content, " ")
	if !found {
		return content, ""
	}
	return cmd, strings.TrimLeft(args, " ")
}

// TrimNonDigits strips leading and trailing non-digit runes, turning mention
// forms like "<@1234>" into "1234".
func TrimNonDigits(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
