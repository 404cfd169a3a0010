package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"imbalance-bars-go/config"
	"imbalance-bars-go/infrastructure/logger"
	"imbalance-bars-go/metrics"
	"imbalance-bars-go/pipeline"
	"imbalance-bars-go/report"
)

// Resamples configured OHLCV datasets into imbalance bars.
// Usage:
//
//	go run ./cmd/bars -config configs/config.yaml -datasets btc_1m,eth_1m -summary summaries.csv
//	go run ./cmd/bars -config configs/config.yaml -watch
func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "config file path")
	datasets := flag.String("datasets", "", "comma separated dataset names; empty runs all")
	summaryPath := flag.String("summary", "", "write a combined summary CSV")
	watch := flag.Bool("watch", false, "keep running and rebuild when config or input files change")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logCfg := cfg.Log
	if logCfg.Level == "" {
		logCfg = logger.DefaultConfig()
	}
	lg, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Close()

	if cfg.MetricsAddr != "" {
		metrics.StartMetricsServer(cfg.MetricsAddr)
		lg.Info("metrics server started", zap.String("addr", cfg.MetricsAddr))
	}

	names := selectDatasets(cfg, *datasets)
	if len(names) == 0 {
		lg.Fatal("no datasets selected", zap.String("filter", *datasets))
	}

	runAll := func() {
		// Reload so that config edits picked up by the watcher take effect.
		cfg, err := config.LoadWithEnvOverrides(*cfgPath)
		if err != nil {
			lg.LogError(err, map[string]interface{}{"path": *cfgPath})
			return
		}
		var sums []report.Summary
		for _, name := range selectDatasets(cfg, *datasets) {
			r := pipeline.Runner{Name: name, Dataset: cfg.Datasets[name], Log: lg.KV()}
			sum, err := r.Run()
			if err != nil {
				lg.LogError(err, map[string]interface{}{"dataset": name})
				continue
			}
			lg.LogRun(name, map[string]interface{}{
				"observations": sum.Observations,
				"bars":         sum.Bars,
				"compression":  sum.Compression,
			})
			sums = append(sums, sum)
		}
		if *summaryPath != "" && len(sums) > 0 {
			if err := report.WriteCSV(*summaryPath, sums); err != nil {
				lg.LogError(err, map[string]interface{}{"path": *summaryPath})
			}
		}
	}
	runAll()

	if !*watch {
		return
	}

	paths := []string{*cfgPath}
	for _, name := range names {
		paths = append(paths, cfg.Datasets[name].Input)
	}
	w, err := config.NewWatcher(paths, 2*time.Second, func(path string) {
		lg.Info("input changed, rebuilding", zap.String("path", path))
		runAll()
	})
	if err != nil {
		lg.Fatal("start watcher", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()
	lg.Info("watching for changes", zap.Strings("paths", paths))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	lg.Info("shutting down")
}

func selectDatasets(cfg config.AppConfig, filter string) []string {
	var names []string
	if strings.TrimSpace(filter) == "" {
		for name := range cfg.Datasets {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	for _, part := range strings.Split(filter, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := cfg.Datasets[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
