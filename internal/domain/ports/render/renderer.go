package render

import "digital-gold-assistant/internal/domain/model"

// AuthView is the presentation of the auth form for one intent: which labels
// to show and whether the display-name field is gated in.
type AuthView struct {
	Title            string
	SubmitLabel      string
	SwitchLabel      string
	NameFieldVisible bool
}

// Renderer is the excluded rendering collaborator at its interface boundary.
// It receives the append-only transcript and a visibility set keyed by
// action id, and exposes no state back to the controller.
type Renderer interface {
	// Auth surface
	ShowAuthMode(view AuthView)
	ShowAuthError(text string) // empty text clears a prior error
	ShowNotice(text string)
	ShowDashboard(displayName string, goldBalance float64)

	// Chat surface
	AppendMessage(msg model.ChatMessage)
	SetVisibleActions(actions []model.ActionID)

	// Purchase surface
	OpenPurchase()
	ClosePurchase()
	SetPurchasePreview(grams float64)
	ClearPurchaseAmount()
	ShowPurchaseError(text string)
	SetBalance(goldBalance float64)
}
