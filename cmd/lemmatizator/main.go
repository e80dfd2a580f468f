// Command lemmatizator serves the lemma-frequency analysis API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreystarchikov/lemmatizator/internal/httpapi"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/config"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/morph"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (optional)")
		debug      = flag.Bool("debug", false, "Verbose HTTP logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// The engine is constructed lazily on first analyze request and kept
	// for the process lifetime; a failed construction is retried on the
	// next request rather than cached.
	dictPath := cfg.Morph.DictPath
	guesser := cfg.Morph.Guesser
	provider := morph.NewProvider(func() (morph.Analyzer, error) {
		dict, err := morph.OpenSQLiteDictionary(context.Background(), dictPath)
		if err != nil {
			return nil, err
		}
		log.Printf("morphological dictionary loaded: %d forms from %s", dict.Len(), dictPath)
		if guesser {
			return morph.WithGuesser(dict), nil
		}
		return dict, nil
	})

	resolver, err := morph.NewResolver(provider, cfg.Cache.Capacity)
	if err != nil {
		log.Fatalf("create resolver: %v", err)
	}

	svc := lemma.New(lemma.Options{
		Detector:  cfg.Language.Detector(),
		Resolver:  resolver,
		StripHTML: cfg.Input.StripHTML,
	})

	serverCfg := httpapi.DefaultConfig()
	serverCfg.Host = cfg.Server.Host
	serverCfg.Port = cfg.Server.Port
	serverCfg.EnableCORS = cfg.Server.EnableCORS
	serverCfg.Debug = *debug

	server := httpapi.NewServer(svc, serverCfg)

	go func() {
		log.Printf("listening on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := server.Run(); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
