package main

import (
	"fmt"
	"strings"

	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/render"
)

var _ render.Renderer = (*consoleRenderer)(nil)

// consoleRenderer is a minimal terminal stand-in for the web rendering layer.
// It only prints; all state lives in the controller.
type consoleRenderer struct{}

func (c *consoleRenderer) ShowAuthMode(view render.AuthView) {
	fmt.Printf("\n== %s ==\n", view.Title)
	if view.NameFieldVisible {
		fmt.Println("fields: name, email, password")
	} else {
		fmt.Println("fields: email, password")
	}
	fmt.Printf("[%s]  (%s)\n", view.SubmitLabel, view.SwitchLabel)
}

func (c *consoleRenderer) ShowAuthError(text string) {
	if text != "" {
		fmt.Printf("auth error: %s\n", text)
	}
}

func (c *consoleRenderer) ShowNotice(text string) {
	fmt.Printf("notice: %s\n", text)
}

func (c *consoleRenderer) ShowDashboard(displayName string, goldBalance float64) {
	fmt.Printf("\n== Dashboard ==\nuser: %s | gold: %.5f g\n", displayName, goldBalance)
}

func (c *consoleRenderer) AppendMessage(msg model.ChatMessage) {
	prefix := "AU Bot"
	if msg.Sender == model.SenderUser {
		prefix = "you"
	}
	fmt.Printf("[%s] %s\n", prefix, msg.Text)
}

func (c *consoleRenderer) SetVisibleActions(actions []model.ActionID) {
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, string(a))
	}
	fmt.Printf("chips: %s\n", strings.Join(labels, " | "))
}

func (c *consoleRenderer) OpenPurchase() {
	fmt.Println("💎 Purchase Digital Gold — enter an amount with /buy <₹amount>")
}

func (c *consoleRenderer) ClosePurchase() {
	fmt.Println("(purchase closed)")
}

func (c *consoleRenderer) SetPurchasePreview(grams float64) {
	fmt.Printf("💎 Purchase Digital Gold - %.5f g\n", grams)
}

func (c *consoleRenderer) ClearPurchaseAmount() {}

func (c *consoleRenderer) ShowPurchaseError(text string) {
	fmt.Printf("purchase error: %s\n", text)
}

func (c *consoleRenderer) SetBalance(goldBalance float64) {
	fmt.Printf("gold: %.5f g\n", goldBalance)
}
