package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MasatsuguKitadai/TrendChecker/internal/advisor"
	"github.com/MasatsuguKitadai/TrendChecker/internal/collector"
	"github.com/MasatsuguKitadai/TrendChecker/internal/config"
	"github.com/MasatsuguKitadai/TrendChecker/internal/notifier"
	"github.com/MasatsuguKitadai/TrendChecker/internal/portfolio"
	"github.com/MasatsuguKitadai/TrendChecker/internal/recorder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendChecker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.Strategy.HistoryDays)

	// Load portfolio (read-only; the file is edited outside this tool)
	pf, err := portfolio.Load(cfg.Portfolio.File)
	if err != nil {
		log.Fatalf("[FATAL] load portfolio: %v", err)
	}
	log.Printf("[INFO] portfolio: %d holdings, %d watching",
		len(pf.Holdings()), len(pf.Watchlist()))

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adv := advisor.New(ctx, col, pf, tn, rec, cfg.Mode(), cfg.Strategy.StopPct, cfg.Strategy.TrailPct)

	// One review pass. Reports go to stdout as well as Telegram.
	fmt.Println(adv.RunExitReview())
	fmt.Println(adv.RunEntryScan())

	// Optional: stay resident answering Telegram commands.
	if os.Getenv("LISTEN") != "true" {
		log.Println("[INFO] review complete")
		return
	}
	if tn == nil {
		log.Fatalln("[FATAL] LISTEN=true requires telegram.bot_token")
	}

	go tn.StartPolling(ctx, adv.HandleCommand)
	log.Println("[INFO] Telegram polling started. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendChecker stopped")
}
