package model

import "strings"

// ConversationContext is a coarse classification of the topic of the latest
// user message. It is derived per message, never stored, and only drives
// which quick-action affordances are shown.
type ConversationContext string

const (
	ContextWelcome            ConversationContext = "welcome"
	ContextGoldInterest       ConversationContext = "gold-interest"
	ContextInvestmentInterest ConversationContext = "investment-interest"
	ContextNeutral            ConversationContext = "neutral"
)

// contextRule maps a keyword set to the context it signals. Rules are
// evaluated in order, first match wins.
type contextRule struct {
	keywords []string
	context  ConversationContext
}

var classifyRules = []contextRule{
	{keywords: []string{"gold", "buy", "invest"}, context: ContextGoldInterest},
	{keywords: []string{"tip", "advice", "help"}, context: ContextInvestmentInterest},
}

// ClassifyQuery derives the conversation context from a user message via
// case-insensitive substring matching against the rule table. Unmatched text
// is ContextNeutral.
func ClassifyQuery(text string) ConversationContext {
	lower := strings.ToLower(text)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.context
			}
		}
	}
	return ContextNeutral
}
