package model

import "fmt"

// ActionID identifies a quick-action affordance the user can select instead
// of typing free text.
type ActionID string

const (
	ActionHelp           ActionID = "help"
	ActionBuyGold        ActionID = "buy-gold"
	ActionInvestmentTips ActionID = "investment-tips"
	ActionGoldInfo       ActionID = "gold-info"
)

// SuggestionAffordance pre-declares the contexts in which an action is
// relevant. The catalog is static and validated at startup.
type SuggestionAffordance struct {
	Action   ActionID
	Contexts []ConversationContext
}

var affordanceCatalog = []SuggestionAffordance{
	{Action: ActionHelp, Contexts: []ConversationContext{ContextWelcome, ContextNeutral}},
	{Action: ActionBuyGold, Contexts: []ConversationContext{ContextWelcome, ContextNeutral, ContextGoldInterest, ContextInvestmentInterest}},
	{Action: ActionInvestmentTips, Contexts: []ConversationContext{ContextWelcome, ContextNeutral, ContextInvestmentInterest}},
	{Action: ActionGoldInfo, Contexts: []ConversationContext{ContextWelcome, ContextNeutral, ContextGoldInterest}},
}

var knownContexts = map[ConversationContext]struct{}{
	ContextWelcome:            {},
	ContextGoldInterest:       {},
	ContextInvestmentInterest: {},
	ContextNeutral:            {},
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}

// validateCatalog ensures every declared action appears exactly once and is
// visible in at least one context.
func validateCatalog() error {
	seen := map[ActionID]struct{}{}
	for _, a := range affordanceCatalog {
		if _, dup := seen[a.Action]; dup {
			return fmt.Errorf("suggestion catalog: duplicate action %q", a.Action)
		}
		if len(a.Contexts) == 0 {
			return fmt.Errorf("suggestion catalog: action %q has no contexts", a.Action)
		}
		seen[a.Action] = struct{}{}
	}
	for _, id := range []ActionID{ActionHelp, ActionBuyGold, ActionInvestmentTips, ActionGoldInfo} {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("suggestion catalog: missing action %q", id)
		}
	}
	return nil
}

// AllActions returns every declared action in catalog order.
func AllActions() []ActionID {
	out := make([]ActionID, 0, len(affordanceCatalog))
	for _, a := range affordanceCatalog {
		out = append(out, a.Action)
	}
	return out
}

// VisibleActions maps a conversation context to the actions that should be
// shown. Total and side-effect free: unknown context values behave like
// ContextNeutral and show everything.
func VisibleActions(ctx ConversationContext) []ActionID {
	if _, known := knownContexts[ctx]; !known {
		return AllActions()
	}
	out := make([]ActionID, 0, len(affordanceCatalog))
	for _, a := range affordanceCatalog {
		for _, c := range a.Contexts {
			if c == ctx {
				out = append(out, a.Action)
				break
			}
		}
	}
	return out
}
