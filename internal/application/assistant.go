package application

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/domain/ports/render"
	"digital-gold-assistant/internal/usecase"
)

// Assistant composes the auth, chat and purchase usecases around one Session
// and one Transcript, and is the single entry surface the renderer calls.
// Every event handler runs to completion under one mutex, which is the Go
// rendition of the source environment's single-threaded event loop: two
// in-flight network calls may still resolve in either order, and the
// transcript reflects completion order.
type Assistant struct {
	mu sync.Mutex

	session    *model.Session
	transcript *model.Transcript

	auth     usecase.AuthUseCase
	chat     usecase.ChatUseCase
	purchase usecase.PurchaseUseCase
}

func New(
	backend adapter.Backend,
	prices adapter.PriceSource,
	renderer render.Renderer,
	sched usecase.DelayScheduler,
	purchaseOpenDelay time.Duration,
	logger *zerolog.Logger,
) *Assistant {
	a := &Assistant{
		session:    model.NewSession(),
		transcript: model.NewTranscript(),
	}

	a.purchase = usecase.NewPurchaseUseCase(a.session, a.transcript, backend, prices, renderer, logger)
	// The scheduled auto-open fires on a timer goroutine, so route it back
	// through the event lock.
	a.chat = usecase.NewChatUseCase(a.session, a.transcript, backend, a.purchase, renderer, sched, purchaseOpenDelay, a.OpenPurchase, logger)
	a.auth = usecase.NewAuthUseCase(a.session, backend, renderer, a.chat, logger)
	return a
}

// --- auth events ---

func (a *Assistant) AuthIntent() model.AuthIntent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.Intent()
}

func (a *Assistant) SetAuthIntent(intent model.AuthIntent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.auth.SetIntent(intent)
}

func (a *Assistant) ToggleAuthIntent() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.auth.ToggleIntent()
}

func (a *Assistant) SubmitAuth(ctx context.Context, creds model.Credentials) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.Submit(ctx, creds)
}

// --- chat events ---

func (a *Assistant) SubmitText(ctx context.Context, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chat.SubmitUserMessage(ctx, text)
}

func (a *Assistant) SelectChip(ctx context.Context, action model.ActionID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chat.HandleChipSelection(ctx, action)
}

// --- purchase events ---

func (a *Assistant) OpenPurchase() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.purchase.OpenEntry()
}

func (a *Assistant) PreviewPurchase(ctx context.Context, amount float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.purchase.UpdateQuantityPreview(ctx, amount)
}

func (a *Assistant) SubmitPurchase(ctx context.Context, amount float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.purchase.Submit(ctx, amount)
}

func (a *Assistant) RefreshBalance(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.purchase.RefreshBalance(ctx)
}

// --- read-only state for the renderer shell ---

func (a *Assistant) Authenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Authenticated()
}

func (a *Assistant) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Balance()
}

func (a *Assistant) Messages() []model.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transcript.Messages()
}
