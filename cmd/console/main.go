// Command console renders the fleet dashboard in the terminal: one table per
// refresh with roster, stats and recommendations, without running the HTTP
// server. Useful for quick checks over SSH and for watching the engine while
// the web console is down.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fleetwatch/pkg/backend"
	"fleetwatch/pkg/fleet"
)

const apiTimeout = 15 * time.Second

var (
	backendURL = flag.String("backend", "", "engine base URL (defaults to etc/backend.yaml)")
	interval   = flag.Duration("interval", 0, "refresh interval; 0 renders once and exits")
	showTrades = flag.Bool("trades", false, "include each bot's trade history")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime)

	client := buildClient()
	session := fleet.NewSession(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderOnce(ctx, client, session); err != nil {
		log.Fatalf("[console] %v", err)
	}
	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("[console] stopped")
			return
		case <-ticker.C:
			if err := renderOnce(ctx, client, session); err != nil {
				log.Printf("[console] refresh failed: %v", err)
			}
		}
	}
}

func buildClient() *backend.Client {
	if *backendURL != "" {
		return backend.NewClient(backend.WithBaseURL(*backendURL))
	}
	cfg, err := backend.LoadConfig("etc/backend.yaml")
	if err != nil {
		log.Printf("[console] no backend config, using defaults: %v", err)
		return backend.NewClient()
	}
	return cfg.BuildClient()
}

func renderOnce(parentCtx context.Context, client *backend.Client, session *fleet.Session) error {
	ctx, cancel := context.WithTimeout(parentCtx, apiTimeout)
	defer cancel()

	if err := session.Refresh(ctx); err != nil {
		return err
	}

	renderHeader(ctx, client, session)
	renderFleet(session)
	if *showTrades {
		renderTrades(ctx, session)
	}
	return nil
}

func renderHeader(ctx context.Context, client *backend.Client, session *fleet.Session) {
	fmt.Printf("\n=== fleetwatch %s ===\n", time.Now().Format("2006-01-02 15:04:05"))

	if health, err := client.Health(ctx); err != nil {
		fmt.Printf("engine: UNREACHABLE (%v)\n", err)
	} else {
		fmt.Printf("engine: %s (%s, %s)\n", health.Status, health.AppName, health.AppMode)
	}

	if summary := session.Summary(); summary.Status == fleet.StatusLoaded {
		s := summary.Value
		fmt.Printf("fleet: %d bots, %d online, %d blocked, %d holding | free %.2f USDT | pnl %.2f | fees %.2f\n",
			s.TotalBots, s.TotalBotsOnline, s.TotalBotsBlocked, s.TotalBotsOpenPosition,
			s.TotalFreeBalanceUSDT, s.TotalRealizedPnl, s.TotalFeesUSDT)
	} else {
		fmt.Printf("fleet summary: %s\n", summary.Status)
	}
}

func renderFleet(session *fleet.Session) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Symbol", "Status", "Pos", "Free USDT", "Trades", "PnL", "Advice"})

	for _, bot := range session.Store().Bots() {
		status := string(bot.Status)
		if bot.Blocked {
			status += " (blocked)"
		}
		pos := ""
		if bot.HasOpenPosition {
			pos = fmt.Sprintf("%.6g", bot.QtyAsset)
		}

		trades, pnl := "-", "-"
		if stats, ok := session.StatsFor(bot.ID); ok {
			trades = fmt.Sprintf("%d", stats.NumTrades)
			pnl = fmt.Sprintf("%.2f", stats.RealizedPnl)
		}

		advice := ""
		if rec, ok := session.Recommendation(bot.ID); ok {
			advice = string(rec.Code)
		}

		t.AppendRow(table.Row{
			bot.ID, bot.Name, bot.Symbol, status, pos,
			fmt.Sprintf("%.2f", bot.FreeBalanceUSDT), trades, pnl, advice,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Free USDT", Align: text.AlignRight},
		{Name: "Trades", Align: text.AlignRight},
		{Name: "PnL", Align: text.AlignRight},
	})
	t.Render()

	for _, bot := range session.Store().ActiveBots() {
		if rec, ok := session.Recommendation(bot.ID); ok && len(rec.Reasons) > 0 {
			fmt.Printf("  %s: %s\n", bot.Name, strings.Join(rec.Reasons, "; "))
		}
	}
}

func renderTrades(ctx context.Context, session *fleet.Session) {
	for _, bot := range session.Store().Bots() {
		if !session.Ledger().Visible(bot.ID) {
			session.ToggleTrades(ctx, bot.ID)
		}
		entry := session.Ledger().Trades(bot.ID)
		if entry.Status != fleet.StatusLoaded || len(entry.Value) == 0 {
			continue
		}

		fmt.Printf("\n%s (%s): %d trades, realized pnl %.2f\n",
			bot.Name, bot.Symbol, len(entry.Value), session.Ledger().RealizedPnl(bot.ID))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Side", "Price", "Qty", "Quote", "PnL", "At"})
		for _, trade := range entry.Value {
			pnl := ""
			if trade.RealizedPnl != nil {
				pnl = fmt.Sprintf("%.2f", *trade.RealizedPnl)
			}
			t.AppendRow(table.Row{
				trade.ID, trade.Side,
				fmt.Sprintf("%.4f", trade.Price),
				fmt.Sprintf("%.6g", trade.Qty),
				fmt.Sprintf("%.2f", trade.QuoteQty),
				pnl,
				trade.CreatedAt.Format("01-02 15:04"),
			})
		}
		t.Render()
	}
}
