package aggregation

import (
	"regexp"
)

// Rule suggests Emoji when Pattern matches anywhere in a note.
type Rule struct {
	Pattern *regexp.Regexp
	Emoji   string
}

// NewRule compiles keywords, an alternation such as "tired|sleepy", into a
// case-insensitive Rule.
func NewRule(keywords, emoji string) (Rule, error) {
	pattern, err := regexp.Compile("(?i)" + keywords)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Pattern: pattern, Emoji: emoji}, nil
}

func mustRule(keywords, emoji string) Rule {
	rule, err := NewRule(keywords, emoji)
	if err != nil {
		panic(err)
	}
	return rule
}

// DefaultRules is the built-in suggestion rule set, in evaluation order.
var DefaultRules = []Rule{
	mustRule("happy|joy|excited|wonderful", "😊"),
	mustRule("sad|down|upset|unhappy", "😢"),
	mustRule("angry|mad|frustrated", "😠"),
	mustRule("tired|sleepy|exhausted", "😴"),
	mustRule("love|heart|caring", "❤️"),
	mustRule("worried|anxious|nervous", "😰"),
	mustRule("sick|ill|unwell", "🤒"),
	mustRule("relaxed|calm|peaceful", "😌"),
}

// Suggest returns the emoji of every rule matching note, in rule order. The
// result is never nil.
func Suggest(note string, rules []Rule) []string {
	suggestions := make([]string, 0, len(rules))
	if note == "" {
		return suggestions
	}

	for _, rule := range rules {
		if rule.Pattern.MatchString(note) {
			suggestions = append(suggestions, rule.Emoji)
		}
	}
	return suggestions
}
