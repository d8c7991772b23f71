package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/internal/config"
	"github.com/comalice/tablefsm/internal/extensibility"
	"github.com/comalice/tablefsm/internal/logging"
	"github.com/comalice/tablefsm/internal/primitives"
	"github.com/comalice/tablefsm/internal/production"
	"github.com/comalice/tablefsm/realtime"
)

var errEnoughEvents = errors.New("enough events sent")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := newTable(logger)
	if err != nil {
		return err
	}

	records := make(chan tablefsm.Record, 256)
	publisher := production.NewChannelPublisher(records)

	consumed := make(chan int)
	go func() {
		n := 0
		for rec := range records {
			n++
			logger.LogAttrs(ctx, slog.LevelDebug, "record",
				slog.String("machine", rec.MachineID),
				slog.String("event", table.EventName(rec.Event)),
				slog.String("from", table.StateName(rec.From)),
				slog.String("to", table.StateName(rec.To)),
				slog.String("branch", rec.Branch.String()),
			)
		}
		consumed <- n
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runRealtime(gctx, table, cfg, publisher, logger)
	})
	for i := 1; i < cfg.Instances; i++ {
		g.Go(func() error {
			return runDirect(gctx, table, i, cfg, publisher, logger)
		})
	}
	err = g.Wait()

	_ = publisher.Close()
	logger.Info("fleet finished",
		slog.Int("instances", cfg.Instances),
		slog.Int("records", <-consumed),
		slog.Uint64("dropped", publisher.Dropped()),
	)
	if err != nil {
		return err
	}

	if cfg.ExportDir == "" {
		return nil
	}
	return export(ctx, table, cfg.ExportDir, logger)
}

// runDirect drives one machine synchronously through the configured number
// of cycles. Odd instances suffer a fault half way and are reset.
func runDirect(ctx context.Context, table *tablefsm.Table[*Light, Signal], i int, cfg config.Config,
	publisher tablefsm.Observer, logger *slog.Logger,
) error {
	id := fmt.Sprintf("light-%d", i)
	light := &Light{name: id, logger: logger}
	m := tablefsm.New(table, light,
		tablefsm.WithID(id),
		tablefsm.WithLogger(logger),
		tablefsm.WithObserver(publisher),
	)

	for c := 0; c < cfg.Cycles; c++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i%2 == 1 && c == cfg.Cycles/2 {
			m.Trigger(fault, Signal{Cycle: c})
			m.Trigger(reset, Signal{Cycle: c})
		}
		for step := 0; step < 3; step++ {
			m.Trigger(timer, Signal{Cycle: c})
		}
	}

	if got := m.GetCurrentState(); got != red {
		return fmt.Errorf("%s: ended in %s, want %s", id, table.StateName(got), table.StateName(red))
	}
	logger.Info("light done", slog.String("light", id), slog.Int("cycles", light.cycles), slog.Int("faults", light.faults))
	return nil
}

// runRealtime drives light-0 through the tick runtime, fed by a timer source.
func runRealtime(ctx context.Context, table *tablefsm.Table[*Light, Signal], cfg config.Config,
	publisher tablefsm.Observer, logger *slog.Logger,
) error {
	light := &Light{name: "light-0", logger: logger}
	m := tablefsm.New(table, light,
		tablefsm.WithID(light.name),
		tablefsm.WithLogger(logger),
		tablefsm.WithObserver(publisher),
	)
	rt := realtime.NewRuntime(m, realtime.Config{TickRate: cfg.Tick, Logger: logger})
	if err := rt.Start(ctx); err != nil {
		return err
	}

	target := cfg.Cycles * 3
	if target > 0 {
		src := extensibility.NewTimerEventSource(timer, Signal{}, cfg.Tick)
		sent := 0
		err := extensibility.Forward(ctx, src, func(e tablefsm.EventID, _ Signal) error {
			if err := rt.SendEvent(e, Signal{Cycle: sent / 3}); err != nil {
				return err
			}
			sent++
			if sent >= target {
				return errEnoughEvents
			}
			return nil
		})
		src.Stop()
		if !errors.Is(err, errEnoughEvents) {
			_ = rt.Stop()
			return err
		}
	}

	if err := rt.Stop(); err != nil {
		return err
	}
	rt.Tick() // flush whatever the last tick did not pick up

	if got := rt.GetCurrentState(); got != red {
		return fmt.Errorf("%s: ended in %s, want %s", light.name, table.StateName(got), table.StateName(red))
	}
	logger.Info("light done", slog.String("light", light.name), slog.Int("cycles", light.cycles),
		slog.Uint64("ticks", rt.GetTickNumber()))
	return nil
}

func export(ctx context.Context, table *tablefsm.Table[*Light, Signal], dir string, logger *slog.Logger) error {
	exporter, err := production.NewFileExporter(dir)
	if err != nil {
		return err
	}

	desc := production.Describe("traffic-light", table)
	desc.Version = primitives.ComputeVersion(&desc)
	if err := desc.Validate(); err != nil {
		return err
	}

	for _, format := range []production.Format{production.FormatDOT, production.FormatJSON, production.FormatYAML} {
		path, err := exporter.Save(ctx, desc, format, int(red))
		if err != nil {
			return err
		}
		logger.Info("table exported", slog.String("path", path), slog.String("version", desc.Version))
	}
	return nil
}
