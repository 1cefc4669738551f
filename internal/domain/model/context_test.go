package model

import "testing"

func TestClassifyQuery(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ConversationContext
	}{
		{"gold keyword", "I want to buy gold", ContextGoldInterest},
		{"invest keyword", "should I invest now?", ContextGoldInterest},
		{"case insensitive", "BUY Gold TODAY", ContextGoldInterest},
		{"tips keyword", "any tips for me", ContextInvestmentInterest},
		{"advice keyword", "I need some advice", ContextInvestmentInterest},
		{"help keyword", "help me out", ContextInvestmentInterest},
		{"gold wins over help", "help me buy gold", ContextGoldInterest},
		{"substring match", "golden opportunity", ContextGoldInterest},
		{"neutral", "what is the weather", ContextNeutral},
		{"empty", "", ContextNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyQuery(tc.text); got != tc.want {
				t.Fatalf("ClassifyQuery(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
