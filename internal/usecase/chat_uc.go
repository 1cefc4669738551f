package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/domain/ports/render"
	"digital-gold-assistant/internal/infra/logging"
	"digital-gold-assistant/internal/infra/metrics"
)

const (
	welcomeText = "Welcome! I'm AU Bot, your digital gold investment assistant. How can I help you today?"
	chatErrText = "⚠️ Server error"
)

// chipReplies is the canned assistant reply per quick-action. Static and
// immutable; a missing action id is a defined no-op.
var chipReplies = map[model.ActionID]string{
	model.ActionHelp:           "I can help you with:\n• Gold investment advice\n• Digital gold purchases\n• Financial planning\n• Investment tips\n\nWhat would you like to know?",
	model.ActionBuyGold:        "Great! Let's get you started with digital gold investment. How much would you like to invest in ₹?",
	model.ActionInvestmentTips: "Here are some smart investment tips:\n\n💡 Start small and invest regularly\n💡 Diversify your portfolio\n💡 Digital gold is safe and liquid\n💡 Consider long-term investment\n\nWould you like to know more about any specific aspect?",
	model.ActionGoldInfo:       "🪙 **Digital Gold Benefits:**\n\n✅ Safe & Secure\n✅ 24/7 Trading\n✅ No Storage Worries\n✅ Pure 24K Gold\n✅ Instant Liquidity\n✅ Low Investment\n\nReady to start investing?",
}

func init() {
	// The reply table must cover every declared action.
	for _, id := range model.AllActions() {
		if _, ok := chipReplies[id]; !ok {
			panic(fmt.Sprintf("chip replies: missing text for action %q", id))
		}
	}
}

// DelayScheduler arranges a single cancellable callback after a delay. The
// production implementation is infra/scheduler.OneShot; tests substitute an
// inline one.
type DelayScheduler interface {
	Schedule(delay time.Duration, fn func())
	Cancel()
}

// Compile-time check
var _ ChatUseCase = (*chatUC)(nil)

// ChatUseCase drives the conversational turn-taking: user text in, assistant
// reply out, suggestion visibility updated from the derived context.
type ChatUseCase interface {
	SubmitUserMessage(ctx context.Context, text string) error
	HandleChipSelection(ctx context.Context, action model.ActionID)
	Welcome()
}

type chatUC struct {
	session    *model.Session
	transcript *model.Transcript
	backend    adapter.Backend
	purchase   PurchaseUseCase
	renderer   render.Renderer
	sched      DelayScheduler
	openDelay  time.Duration
	openEntry  func() // scheduled purchase-surface open; nil falls back to purchase.OpenEntry
	log        *zerolog.Logger
}

func NewChatUseCase(
	session *model.Session,
	transcript *model.Transcript,
	backend adapter.Backend,
	purchase PurchaseUseCase,
	renderer render.Renderer,
	sched DelayScheduler,
	openDelay time.Duration,
	openEntry func(),
	logger *zerolog.Logger,
) *chatUC {
	c := &chatUC{
		session:    session,
		transcript: transcript,
		backend:    backend,
		purchase:   purchase,
		renderer:   renderer,
		sched:      sched,
		openDelay:  openDelay,
		openEntry:  openEntry,
		log:        logger,
	}
	if c.openEntry == nil {
		c.openEntry = purchase.OpenEntry
	}
	return c
}

// Welcome appends the assistant greeting and shows the full suggestion set.
// Called once after a successful login.
func (c *chatUC) Welcome() {
	c.append(model.SenderAssistant, welcomeText)
	c.applyVisibility(model.ContextWelcome)
}

// SubmitUserMessage runs one chat turn. The user message and the derived
// suggestion visibility are rendered before the remote call, so a slow or
// failed reply never delays them.
func (c *chatUC) SubmitUserMessage(ctx context.Context, text string) error {
	defer logging.TraceDuration(c.log, "ChatUC.SubmitUserMessage")()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	c.append(model.SenderUser, text)

	convCtx := model.ClassifyQuery(text)
	c.applyVisibility(convCtx)
	metrics.IncChatTurn(string(convCtx))

	email := ""
	if id, ok := c.session.Identity(); ok {
		email = id.Email
	}
	ctx = logging.WithEmail(ctx, email)

	res, err := c.backend.Query(ctx, email, text)
	if err != nil {
		logging.With(ctx, c.log).Warn().Err(err).Msg("query failed")
		c.append(model.SenderAssistant, chatErrText)
		return err
	}

	c.append(model.SenderAssistant, res.Message)
	if res.RedirectToPurchase {
		c.purchase.OpenEntry()
		c.applyVisibility(model.ContextGoldInterest)
	}
	return nil
}

// HandleChipSelection appends the canned reply for the selected quick-action.
// buy-gold narrows suggestions to gold and schedules the purchase surface to
// open; investment-tips narrows to investment. Unknown ids are ignored.
func (c *chatUC) HandleChipSelection(_ context.Context, action model.ActionID) {
	reply, ok := chipReplies[action]
	if !ok {
		return
	}

	metrics.IncChipSelection(string(action))
	c.append(model.SenderAssistant, reply)

	switch action {
	case model.ActionBuyGold:
		c.applyVisibility(model.ContextGoldInterest)
		c.sched.Schedule(c.openDelay, c.openEntry)
	case model.ActionInvestmentTips:
		c.applyVisibility(model.ContextInvestmentInterest)
	}
}

func (c *chatUC) append(sender model.Sender, text string) {
	msg := c.transcript.Append(sender, text)
	c.renderer.AppendMessage(msg)
}

func (c *chatUC) applyVisibility(convCtx model.ConversationContext) {
	c.renderer.SetVisibleActions(model.VisibleActions(convCtx))
}
