// File: cmd/app/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"digital-gold-assistant/internal/application"
	"digital-gold-assistant/internal/config"
	"digital-gold-assistant/internal/domain/model"
	"digital-gold-assistant/internal/infra/api"
	"digital-gold-assistant/internal/infra/logging"
	"digital-gold-assistant/internal/infra/metrics"
	"digital-gold-assistant/internal/infra/scheduler"
	"digital-gold-assistant/internal/infra/web"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, unredacted PII)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Backend gateway ----
	backend, err := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if err != nil {
		log.Fatalf("backend client: %v", err)
	}
	prices := api.NewPriceCacheDecorator(backend, cfg.Backend.PriceTTL)

	// ---- Controller ----
	renderer := &consoleRenderer{}
	assistant := application.New(backend, prices, renderer, scheduler.NewOneShot(), cfg.Chat.PurchaseOpenDelay, logger)

	// ---- Debug server (health + metrics) ----
	if cfg.Debug.Port > 0 {
		srv := web.NewServer(cfg.Debug.Port, logger)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("debug server stopped")
			}
		}()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	assistant.SetAuthIntent(model.IntentLogin)
	fmt.Println(`commands: /login <email> <password> | /signup <email> <password> <name> | /switch`)
	fmt.Println(`          /chip <action> | /buy <amount> | /preview <amount> | /refresh | /quit`)

	runLoop(ctx, assistant)
}

// runLoop reads events from stdin and forwards them to the controller. Each
// line is one discrete event, mirroring the click/keypress surface of the
// web renderer.
func runLoop(ctx context.Context, assistant *application.Assistant) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			_ = assistant.SubmitText(ctx, line)
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "/quit":
			return
		case "/switch":
			assistant.ToggleAuthIntent()
		case "/login":
			if len(fields) < 3 {
				fmt.Println("usage: /login <email> <password>")
				continue
			}
			assistant.SetAuthIntent(model.IntentLogin)
			_ = assistant.SubmitAuth(ctx, model.Credentials{Email: fields[1], Password: fields[2]})
		case "/signup":
			if len(fields) < 4 {
				fmt.Println("usage: /signup <email> <password> <name>")
				continue
			}
			assistant.SetAuthIntent(model.IntentSignup)
			_ = assistant.SubmitAuth(ctx, model.Credentials{
				Email:       fields[1],
				Password:    fields[2],
				DisplayName: strings.Join(fields[3:], " "),
			})
		case "/chip":
			if len(fields) < 2 {
				fmt.Println("usage: /chip <action>")
				continue
			}
			assistant.SelectChip(ctx, model.ActionID(fields[1]))
		case "/buy":
			amount := parseAmount(fields)
			_ = assistant.SubmitPurchase(ctx, amount)
		case "/preview":
			amount := parseAmount(fields)
			assistant.PreviewPurchase(ctx, amount)
		case "/refresh":
			_ = assistant.RefreshBalance(ctx)
		default:
			fmt.Printf("unknown command %s\n", fields[0])
		}
	}
}

func parseAmount(fields []string) float64 {
	if len(fields) < 2 {
		return 0
	}
	amount, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0
	}
	return amount
}
