// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/domain/ports/render"
)

// fakeBackend is a scripted in-memory backend used by unit tests. Each op
// returns its configured result/error and counts calls.
type fakeBackend struct {
	signupRes   *adapter.SignupResult
	signupErr   error
	signupCalls int

	loginRes   *adapter.LoginResult
	loginErr   error
	loginCalls int

	queryRes   *adapter.QueryResult
	queryErr   error
	queryCalls int
	lastQuery  string
	lastEmail  string

	purchaseRes   *adapter.PurchaseResult
	purchaseErr   error
	purchaseCalls int
	onPurchase    func() // invoked mid-call, used to simulate reentrant events

	balance      float64
	balanceErr   error
	balanceCalls int

	price      float64
	priceErr   error
	priceCalls int
}

func (f *fakeBackend) Signup(_ context.Context, _, _, _ string) (*adapter.SignupResult, error) {
	f.signupCalls++
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.signupRes, nil
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (*adapter.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRes, nil
}

func (f *fakeBackend) Query(_ context.Context, email, userQuery string) (*adapter.QueryResult, error) {
	f.queryCalls++
	f.lastEmail = email
	f.lastQuery = userQuery
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryRes, nil
}

func (f *fakeBackend) PurchaseGold(_ context.Context, _ string, _ float64) (*adapter.PurchaseResult, error) {
	f.purchaseCalls++
	if f.onPurchase != nil {
		f.onPurchase()
	}
	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	return f.purchaseRes, nil
}

func (f *fakeBackend) FetchBalance(_ context.Context, _ string) (float64, error) {
	f.balanceCalls++
	if f.balanceErr != nil {
		return 0, f.balanceErr
	}
	return f.balance, nil
}

func (f *fakeBackend) GoldPrice(_ context.Context) (float64, error) {
	f.priceCalls++
	if f.priceErr != nil {
		return 0, f.priceErr
	}
	return f.price, nil
}

// recordingRenderer captures every rendering call so tests can assert on the
// exact surface the controller produced.
type recordingRenderer struct {
	authViews      []render.AuthView
	authErrors     []string
	notices        []string
	dashboardName  string
	dashboardCalls int

	messages   []model.ChatMessage
	visibility [][]model.ActionID

	openCalls      int
	closeCalls     int
	previews       []float64
	clearCalls     int
	purchaseErrors []string
	balances       []float64
}

func (r *recordingRenderer) ShowAuthMode(view render.AuthView) { r.authViews = append(r.authViews, view) }
func (r *recordingRenderer) ShowAuthError(text string)         { r.authErrors = append(r.authErrors, text) }
func (r *recordingRenderer) ShowNotice(text string)            { r.notices = append(r.notices, text) }
func (r *recordingRenderer) ShowDashboard(name string, _ float64) {
	r.dashboardName = name
	r.dashboardCalls++
}
func (r *recordingRenderer) AppendMessage(msg model.ChatMessage) {
	r.messages = append(r.messages, msg)
}
func (r *recordingRenderer) SetVisibleActions(actions []model.ActionID) {
	r.visibility = append(r.visibility, actions)
}
func (r *recordingRenderer) OpenPurchase()                  { r.openCalls++ }
func (r *recordingRenderer) ClosePurchase()                 { r.closeCalls++ }
func (r *recordingRenderer) SetPurchasePreview(g float64)   { r.previews = append(r.previews, g) }
func (r *recordingRenderer) ClearPurchaseAmount()           { r.clearCalls++ }
func (r *recordingRenderer) ShowPurchaseError(text string)  { r.purchaseErrors = append(r.purchaseErrors, text) }
func (r *recordingRenderer) SetBalance(goldBalance float64) { r.balances = append(r.balances, goldBalance) }

func (r *recordingRenderer) lastVisibility() []model.ActionID {
	if len(r.visibility) == 0 {
		return nil
	}
	return r.visibility[len(r.visibility)-1]
}

func (r *recordingRenderer) lastAuthError() string {
	if len(r.authErrors) == 0 {
		return ""
	}
	return r.authErrors[len(r.authErrors)-1]
}

func (r *recordingRenderer) assistantTexts() []string {
	var out []string
	for _, m := range r.messages {
		if m.Sender == model.SenderAssistant {
			out = append(out, m.Text)
		}
	}
	return out
}

// inlineScheduler fires scheduled callbacks synchronously so tests trigger
// the delayed purchase-open deterministically.
type inlineScheduler struct {
	scheduled int
	lastDelay time.Duration
	cancelled int
}

func (s *inlineScheduler) Schedule(delay time.Duration, fn func()) {
	s.scheduled++
	s.lastDelay = delay
	fn()
}

func (s *inlineScheduler) Cancel() { s.cancelled++ }

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func hasAction(actions []model.ActionID, id model.ActionID) bool {
	for _, a := range actions {
		if a == id {
			return true
		}
	}
	return false
}
