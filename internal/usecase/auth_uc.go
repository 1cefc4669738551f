package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain"
	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/domain/ports/render"
	"digital-gold-assistant/internal/infra/logging"
	"digital-gold-assistant/internal/infra/metrics"
)

const (
	msgAllFieldsRequired = "All fields are required"
	msgServerError       = "Server error"
)

// Compile-time check
var _ AuthUseCase = (*authUC)(nil)

// AuthUseCase gates access to the dashboard: it tracks the login/signup
// intent and submits credentials to the backend.
type AuthUseCase interface {
	Intent() model.AuthIntent
	SetIntent(intent model.AuthIntent)
	ToggleIntent()
	Submit(ctx context.Context, creds model.Credentials) error
}

type authUC struct {
	session  *model.Session
	backend  adapter.Backend
	renderer render.Renderer
	chat     ChatUseCase
	intent   model.AuthIntent
	log      *zerolog.Logger
}

func NewAuthUseCase(session *model.Session, backend adapter.Backend, renderer render.Renderer, chat ChatUseCase, logger *zerolog.Logger) *authUC {
	return &authUC{
		session:  session,
		backend:  backend,
		renderer: renderer,
		chat:     chat,
		intent:   model.IntentLogin,
		log:      logger,
	}
}

func (a *authUC) Intent() model.AuthIntent { return a.intent }

// SetIntent switches the presentation intent. Switching resets any prior
// error and re-gates the display-name field through the rendered view.
func (a *authUC) SetIntent(intent model.AuthIntent) {
	if intent != model.IntentLogin && intent != model.IntentSignup {
		return
	}
	a.intent = intent
	a.renderer.ShowAuthError("")
	a.renderer.ShowAuthMode(viewFor(intent))
}

func (a *authUC) ToggleIntent() {
	if a.intent == model.IntentLogin {
		a.SetIntent(model.IntentSignup)
	} else {
		a.SetIntent(model.IntentLogin)
	}
}

func viewFor(intent model.AuthIntent) render.AuthView {
	if intent == model.IntentSignup {
		return render.AuthView{
			Title:            "Create Account",
			SubmitLabel:      "Sign Up",
			SwitchLabel:      "Already have an account? Login",
			NameFieldVisible: true,
		}
	}
	return render.AuthView{
		Title:            "Login",
		SubmitLabel:      "Login",
		SwitchLabel:      "Don't have an account? Create Account",
		NameFieldVisible: false,
	}
}

// Submit validates credentials locally and performs the intent-specific
// remote call. Signup success emits a notice and forces intent back to login;
// it never authenticates the session. Login success establishes the session
// and hands off to the chat welcome.
func (a *authUC) Submit(ctx context.Context, creds model.Credentials) error {
	defer logging.TraceDuration(a.log, "AuthUC.Submit")()

	creds = creds.Trimmed()
	if !creds.Complete(a.intent) {
		a.renderer.ShowAuthError(msgAllFieldsRequired)
		metrics.IncAuthAttempt(string(a.intent), "validation")
		return domain.ErrValidation
	}

	if a.intent == model.IntentSignup {
		return a.submitSignup(ctx, creds)
	}
	return a.submitLogin(ctx, creds)
}

func (a *authUC) submitSignup(ctx context.Context, creds model.Credentials) error {
	res, err := a.backend.Signup(ctx, creds.Email, creds.Password, creds.DisplayName)
	if err != nil {
		a.surfaceAuthFailure(err)
		metrics.IncAuthAttempt(string(model.IntentSignup), "failure")
		return err
	}

	metrics.IncAuthAttempt(string(model.IntentSignup), "success")
	a.renderer.ShowNotice(res.Message)
	// Signup and login are distinct steps; the fresh account still logs in.
	a.SetIntent(model.IntentLogin)
	return nil
}

func (a *authUC) submitLogin(ctx context.Context, creds model.Credentials) error {
	res, err := a.backend.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		a.surfaceAuthFailure(err)
		metrics.IncAuthAttempt(string(model.IntentLogin), "failure")
		return err
	}

	id := model.Identity{Email: res.Email, DisplayName: res.Name}
	if err := a.session.SetAuthenticated(id, res.GoldBalance); err != nil {
		a.log.Error().Err(err).Msg("login response rejected by session")
		a.renderer.ShowAuthError(msgServerError)
		metrics.IncAuthAttempt(string(model.IntentLogin), "failure")
		return err
	}

	metrics.IncAuthAttempt(string(model.IntentLogin), "success")
	a.log.Info().
		Str("email", logging.Redact(id.Email, false)).
		Msg("session authenticated")

	a.renderer.ShowDashboard(id.DisplayName, res.GoldBalance)
	a.chat.Welcome()
	return nil
}

// surfaceAuthFailure shows the server-provided error text verbatim for
// remote rejections and a fixed generic text for transport failures.
func (a *authUC) surfaceAuthFailure(err error) {
	var remote *adapter.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		a.renderer.ShowAuthError(remote.Message)
		return
	}
	a.log.Debug().Err(err).Msg("auth transport failure")
	a.renderer.ShowAuthError(msgServerError)
}
