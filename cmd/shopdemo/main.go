// shopdemo drives the order lifecycle engine through the shop's standard
// walk-throughs: observer fan-out, runtime strategy swaps, and reversible
// commands. Each run owns its own registry, bus, pricing context and
// invoker; nothing is shared between invocations.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/techbuild/orderflow/internal/catalog"
	"github.com/techbuild/orderflow/internal/observers"
	"github.com/techbuild/orderflow/internal/orders/command"
	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/eventbus"
	"github.com/techbuild/orderflow/internal/orders/pricing"
	"github.com/techbuild/orderflow/internal/orders/registry"
	"github.com/techbuild/orderflow/internal/pkg/config"
	"github.com/techbuild/orderflow/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := telemetry.NewLogger(cfg.LogLevel, cfg.PrettyLogs)

	app := &cli.App{
		Name:  "shopdemo",
		Usage: "run the computer shop order engine demos",
		Commands: []*cli.Command{
			{
				Name:  "lifecycle",
				Usage: "walk one order through the full lifecycle with observers attached",
				Action: func(*cli.Context) error {
					return runLifecycle(cfg, logger)
				},
			},
			{
				Name:  "pricing",
				Usage: "apply each pricing strategy to the same order",
				Action: func(*cli.Context) error {
					return runPricing(cfg, logger)
				},
			},
			{
				Name:  "commands",
				Usage: "execute and undo order commands through the invoker",
				Action: func(*cli.Context) error {
					return runCommands(cfg, logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

// session bundles the per-run engine instances.
type session struct {
	registry  *registry.Registry
	invoker   *command.Invoker
	pricing   *pricing.Context
	analytics *observers.Analytics
	inventory *observers.Inventory
	catalog   *catalog.Catalog
}

func newSession(cfg config.Config, logger zerolog.Logger) (*session, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	bus := eventbus.New(logger)
	reg := registry.New(bus, logger)

	stock := make(map[string]int)
	for _, t := range cat.Types() {
		computer, err := cat.ByType(t)
		if err != nil {
			return nil, err
		}
		stock[computer.Name] = 10
	}

	inventory := observers.NewInventory(logger, stock)
	analytics := observers.NewAnalytics(logger, prometheus.NewRegistry())

	reg.RegisterObserver(observers.NewNotification(logger))
	reg.RegisterObserver(inventory)
	reg.RegisterObserver(analytics)

	return &session{
		registry:  reg,
		invoker:   command.NewInvoker(logger),
		pricing:   pricing.NewContext(logger),
		analytics: analytics,
		inventory: inventory,
		catalog:   cat,
	}, nil
}

func runLifecycle(cfg config.Config, logger zerolog.Logger) error {
	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	gaming, err := s.catalog.ByType("gaming")
	if err != nil {
		return err
	}

	order := s.registry.CreateOrder("John Doe", "john@email.com", gaming.Product())
	for _, step := range []func(string) error{
		s.registry.ConfirmOrder,
		s.registry.ProcessOrder,
		s.registry.ShipOrder,
		s.registry.DeliverOrder,
	} {
		if err := step(order.ID); err != nil {
			return err
		}
	}

	fmt.Printf("order %s delivered; revenue so far: $%s\n", order.ID, s.analytics.Revenue().StringFixed(2))
	return nil
}

func runPricing(cfg config.Config, logger zerolog.Logger) error {
	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	workstation, err := s.catalog.ByType("workstation")
	if err != nil {
		return err
	}
	order := s.registry.CreateOrder("Test Customer", "test@email.com", workstation.Product())

	strategies := []pricing.Strategy{
		pricing.Regular{},
		pricing.Student{},
		pricing.NewBulk(5),
		pricing.BlackFriday(),
	}
	for _, strat := range strategies {
		s.pricing.SetStrategy(strat)
		price, err := s.pricing.ExecuteStrategy(s.registry, order.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-22s $%s (%s)\n", strat.Name(), price.StringFixed(2), strat.DiscountDescription())
	}
	return nil
}

func runCommands(cfg config.Config, logger zerolog.Logger) error {
	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	budget, err := s.catalog.ByType("budget")
	if err != nil {
		return err
	}

	s.pricing.SetStrategy(pricing.Student{})
	place := command.NewPlaceOrder(s.registry, s.pricing, "Alice Johnson", "alice@email.com", budget.Product())
	if err := s.invoker.ExecuteCommand(place); err != nil {
		return err
	}
	orderID := place.CreatedOrderID()

	if err := s.invoker.ExecuteCommand(command.NewUpdateStatus(s.registry, logger, orderID, domain.StatusProcessing)); err != nil {
		return err
	}
	if err := s.invoker.ExecuteCommand(command.NewUpdateStatus(s.registry, logger, orderID, domain.StatusShipped)); err != nil {
		return err
	}

	// Walk the shipment back, then everything else.
	if err := s.invoker.UndoLastCommand(); err != nil {
		return err
	}
	if err := s.invoker.UndoAllCommands(); err != nil {
		return err
	}

	fmt.Println("execution log:")
	for i, entry := range s.invoker.Log() {
		line := fmt.Sprintf("%2d. %-8s %s", i+1, entry.Action, entry.Command)
		if entry.Detail != "" {
			line += " (" + entry.Detail + ")"
		}
		fmt.Println(line)
	}
	return nil
}
