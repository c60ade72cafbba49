// Command receipt prints coffee order receipts.
//
// Without flags it prints the receipt of a built-in sample order. --order
// reads a single JSON order (the POST /api/quote schema) and --batch reads
// newline-delimited JSON orders, gzip-compressed when the name ends in .gz.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/coffee-order/internal/api"
	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/order"
	"github.com/xenking/coffee-order/internal/receipt"
)

type config struct {
	Order   string `usage:"JSON order file" flag:"order"`
	Batch   string `usage:"Newline-delimited JSON orders, .gz accepted" flag:"batch"`
	Codes   string `usage:"Comma separated promo codes, replaces the order's codes" flag:"codes"`
	Author  string `default:"Coffee Shop" usage:"Receipt author" flag:"author"`
	Workers int    `default:"4" usage:"Concurrent batch workers" flag:"workers"`
}

func sampleOrder() order.QuoteRequest {
	return order.QuoteRequest{
		Items: []beverage.Beverage{
			{
				BaseDrink: "Latte",
				Size:      beverage.SizeTall,
				Temp:      beverage.TempHot,
				PlantMilk: "Oat",
				Shots:     2,
				Syrups:    []string{"Vanilla"},
			},
			{
				BaseDrink: "Tea",
				Size:      beverage.SizeGrande,
				Temp:      beverage.TempHot,
				IsDecaf:   true,
			},
		},
		PromoCodes: []string{"HAPPYHOUR"},
	}
}

func main() {
	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	var cfg config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:        "COFFEE",
		SkipFiles:        true,
		AllowUnknownEnvs: true,
	})
	if err := loader.Load(); err != nil {
		lg.Fatal("Load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, cfg, os.Stdout, time.Now); err != nil {
		lg.Fatal("Print receipt", zap.Error(err))
	}
}

func run(ctx context.Context, lg *zap.Logger, cfg config, out io.Writer, now func() time.Time) error {
	if cfg.Batch != "" {
		return runBatch(ctx, lg, cfg, out, now)
	}

	req := sampleOrder()
	if cfg.Order != "" {
		data, err := os.ReadFile(cfg.Order)
		if err != nil {
			return errors.Wrap(err, "read order")
		}
		if req, err = api.DecodeQuoteRequest(data); err != nil {
			return errors.Wrapf(err, "decode %s", cfg.Order)
		}
	}

	_, err := fmt.Fprintln(out, render(cfg, req, now()))
	return err
}

func render(cfg config, req order.QuoteRequest, at time.Time) string {
	codes := req.PromoCodes
	if cfg.Codes != "" {
		codes = strings.Split(cfg.Codes, ",")
	}
	return receipt.Format(receipt.Order{
		Beverages:  req.Items,
		PromoCodes: codes,
		Author:     cfg.Author,
		CreatedAt:  at,
	})
}

// runBatch renders every order concurrently and prints the receipts in input
// order, separated by blank lines.
func runBatch(ctx context.Context, lg *zap.Logger, cfg config, out io.Writer, now func() time.Time) error {
	lines, err := readBatch(cfg.Batch)
	if err != nil {
		return err
	}
	lg.Info("Rendering batch", zap.String("file", cfg.Batch), zap.Int("orders", len(lines)))

	at := now()
	receipts := make([]string, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req, err := api.DecodeQuoteRequest(line)
			if err != nil {
				return errors.Wrapf(err, "order %d", i+1)
			}
			receipts[i] = render(cfg, req, at)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	_, err = io.WriteString(out, strings.Join(receipts, "\n\n")+"\n")
	return err
}

// readBatch returns the non-blank lines of path.
func readBatch(path string) (_ [][]byte, rerr error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open batch")
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "close batch")
		}
	}()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip")
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	var lines [][]byte
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1<<20)
	for s.Scan() {
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, bytes.Clone(line))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scan batch")
	}
	return lines, nil
}
