package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain"
	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/domain/ports/render"
	"digital-gold-assistant/internal/infra/logging"
	"digital-gold-assistant/internal/infra/metrics"
)

const (
	msgEnterValidAmount = "Enter a valid amount"
	purchaseFailText    = "⚠️ Purchase failed"
)

// Compile-time check
var _ PurchaseUseCase = (*purchaseUC)(nil)

// PurchaseUseCase orchestrates the buy-gold sub-flow: entry surface, live
// price-to-grams preview, submission, and the balance refresh.
type PurchaseUseCase interface {
	OpenEntry()
	UpdateQuantityPreview(ctx context.Context, amount float64)
	Submit(ctx context.Context, amount float64) error
	RefreshBalance(ctx context.Context) error
}

type purchaseUC struct {
	session    *model.Session
	transcript *model.Transcript
	backend    adapter.Backend
	prices     adapter.PriceSource // decorated lookup, see infra/api price cache
	renderer   render.Renderer
	log        *zerolog.Logger

	open     bool
	inFlight bool
}

func NewPurchaseUseCase(
	session *model.Session,
	transcript *model.Transcript,
	backend adapter.Backend,
	prices adapter.PriceSource,
	renderer render.Renderer,
	logger *zerolog.Logger,
) *purchaseUC {
	if prices == nil {
		prices = backend
	}
	return &purchaseUC{
		session:    session,
		transcript: transcript,
		backend:    backend,
		prices:     prices,
		renderer:   renderer,
		log:        logger,
	}
}

// OpenEntry makes the purchase surface available. Idempotent: reopening an
// already-open surface changes nothing.
func (p *purchaseUC) OpenEntry() {
	if p.open {
		return
	}
	p.open = true
	p.renderer.OpenPurchase()
}

// UpdateQuantityPreview recomputes the advisory grams preview for the typed
// amount. Lookup failures are logged and swallowed; a stale or failed price
// never blocks submission.
func (p *purchaseUC) UpdateQuantityPreview(ctx context.Context, amount float64) {
	if !model.ValidAmount(amount) {
		return
	}
	price, err := p.prices.GoldPrice(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("gold price lookup failed, preview skipped")
		return
	}
	p.renderer.SetPurchasePreview(model.GramsForAmount(amount, price))
}

// Submit performs one purchase attempt. Validation failures surface locally
// with no network call; overlapping submissions are rejected outright.
func (p *purchaseUC) Submit(ctx context.Context, amount float64) error {
	defer logging.TraceDuration(p.log, "PurchaseUC.Submit")()

	req, err := model.NewPurchaseRequest(amount)
	if err != nil {
		p.renderer.ShowPurchaseError(msgEnterValidAmount)
		metrics.IncPurchase("validation")
		return domain.ErrValidation
	}

	if p.inFlight {
		metrics.IncPurchase("rejected_overlap")
		return domain.ErrPurchaseInFlight
	}

	email := ""
	if id, ok := p.session.Identity(); ok {
		email = id.Email
	}

	p.inFlight = true
	defer func() { p.inFlight = false }()

	ctx = logging.WithAttemptID(ctx, req.ID)
	log := logging.With(ctx, p.log)
	res, err := p.backend.PurchaseGold(ctx, email, req.Amount)
	if err != nil {
		log.Warn().Err(err).Msg("purchase failed")
		p.appendAssistant(purchaseFailText)
		metrics.IncPurchase("failure")
		return err
	}

	p.appendAssistant("✅ " + res.Message)
	if !p.session.UpdateBalance(res.UpdatedGoldBalance) {
		// Cannot occur under correct control flow; the guard still holds.
		log.Error().Msg("balance update ignored without session identity")
	}
	p.renderer.SetBalance(p.session.Balance())
	p.renderer.ClearPurchaseAmount()
	p.closeEntry()
	p.renderer.SetVisibleActions(model.VisibleActions(model.ContextGoldInterest))

	metrics.IncPurchase("success")
	log.Info().Float64("amount", req.Amount).Float64("balance", p.session.Balance()).Msg("purchase complete")
	return nil
}

// RefreshBalance re-reads the committed balance from the backend. A no-op
// without an authenticated session; failures are diagnostic only.
func (p *purchaseUC) RefreshBalance(ctx context.Context) error {
	id, ok := p.session.Identity()
	if !ok {
		return nil
	}
	balance, err := p.backend.FetchBalance(ctx, id.Email)
	if err != nil {
		p.log.Debug().Err(err).Msg("balance refresh failed")
		return err
	}
	if p.session.UpdateBalance(balance) {
		p.renderer.SetBalance(balance)
	}
	return nil
}

func (p *purchaseUC) appendAssistant(text string) {
	msg := p.transcript.Append(model.SenderAssistant, text)
	p.renderer.AppendMessage(msg)
}

func (p *purchaseUC) closeEntry() {
	if !p.open {
		return
	}
	p.open = false
	p.renderer.ClosePurchase()
}
