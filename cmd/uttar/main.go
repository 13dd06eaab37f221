// Package main is the Uttar CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/uttarai/uttar/internal/chunk"
	"github.com/uttarai/uttar/internal/cli"
	"github.com/uttarai/uttar/internal/config"
	"github.com/uttarai/uttar/internal/embedding"
	"github.com/uttarai/uttar/internal/extract"
	"github.com/uttarai/uttar/internal/llm"
	"github.com/uttarai/uttar/internal/loader"
	"github.com/uttarai/uttar/internal/ocr"
	"github.com/uttarai/uttar/internal/qa"
	"github.com/uttarai/uttar/internal/server"
	"github.com/uttarai/uttar/internal/vector"
	"github.com/uttarai/uttar/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	command := "server"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "version", "--version", "-v":
		fmt.Printf("uttar version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: uttar <command> [options]

Commands:
  server    load the document corpus and serve the Q&A web form (default)
  ask       answer a single question from the terminal
  version   print version
  help      show this help

Options (server, ask):
  -config   config file path (default: ./config.yaml when present)
  -debug    enable debug logging

Options (ask):
  -json     print the answer as JSON`)
}

// loadConfig loads the config file at path when given; otherwise it uses
// ./config.yaml if present, falling back to built-in defaults. The optional
// .env file is loaded first so OPENAI_API_KEY reaches the config.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()
	if path != "" {
		return config.Load(path)
	}
	if cwd, err := os.Getwd(); err == nil {
		fallback := filepath.Join(cwd, "config.yaml")
		if _, statErr := os.Stat(fallback); statErr == nil {
			return config.Load(fallback)
		}
	}
	return config.Default(), nil
}

// buildEngine runs the startup pipeline: load documents, chunk the corpus,
// embed every chunk, and build the in-memory index and QA engine.
func buildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*qa.Engine, error) {
	extractOpts := []extract.Option{extract.WithLogger(logger)}
	if engine, err := ocr.Locate(cfg.OCR); err != nil {
		logger.Warn("OCR unavailable, scanned PDFs will be skipped", zap.Error(err))
	} else {
		extractOpts = append(extractOpts, extract.WithOCR(engine))
	}

	docs, corpus, err := loader.New(extract.NewExtractor(extractOpts...), logger).Load(ctx, cfg.Documents.Dir)
	if err != nil {
		return nil, err
	}
	logger.Info("documents loaded", zap.Int("count", len(docs)))

	chunks := chunk.NewSplitter(cfg.Chunk.Size, cfg.Chunk.Overlap).Split(corpus)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("chunking produced no chunks")
	}
	logger.Info("corpus chunked", zap.Int("chunks", len(chunks)))

	embedder, err := embedding.NewOpenAIEmbedder(cfg.AI.APIKey, cfg.AI.EmbeddingModel, cfg.AI.EmbeddingDimensions)
	if err != nil {
		return nil, err
	}
	index, err := vector.NewMemoryIndex(cfg.AI.EmbeddingDimensions)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(chunks))
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
		texts[i] = c.Content
	}
	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if err := index.Add(ctx, ids, vectors); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	logger.Info("vector index built", zap.Int("size", index.Size()))

	completer, err := llm.NewOpenAICompleter(cfg.AI.APIKey, cfg.AI.CompletionModel)
	if err != nil {
		return nil, err
	}
	return qa.NewEngine(embedder, index, completer, chunks, cfg.Retrieval.TopK, logger), nil
}

func setup(fs *flag.FlagSet, args []string) (*config.Config, *zap.Logger, []string) {
	configPath := fs.String("config", "", "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	return cfg, logger, fs.Args()
}

func runServer() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "server" {
		args = args[1:]
	}
	cfg, logger, _ := setup(flag.NewFlagSet("server", flag.ExitOnError), args)
	defer logger.Sync()

	engine, err := buildEngine(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	srv := server.NewServer(engine, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "print the answer as JSON")
	cfg, logger, rest := setup(fs, os.Args[2:])
	defer logger.Sync()

	question := strings.TrimSpace(strings.Join(rest, " "))
	if question == "" {
		fmt.Println("Usage: uttar ask [options] <question>")
		os.Exit(1)
	}

	ctx := context.Background()
	engine, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	answer, err := engine.Ask(ctx, question)
	if err != nil {
		logger.Fatal("question answering failed", zap.Error(err))
	}
	format := cli.OutputText
	if *jsonOut {
		format = cli.OutputJSON
	}
	if err := cli.WriteAnswer(os.Stdout, answer, format); err != nil {
		logger.Fatal("write answer failed", zap.Error(err))
	}
}
