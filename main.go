// go_vidpost turns YouTube videos into professional social post drafts.
//
// Exposes six MCP tools: set_credentials, check_credentials, extract_transcript,
// summarize_transcript, generate_post, video_to_post.
// Runs over stdio by default, or as an HTTP MCP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/engine/sources"
	"github.com/anatolykoptev/go_vidpost/internal/engine/writer"
	"github.com/anatolykoptev/go_vidpost/internal/keystore"
	"github.com/anatolykoptev/go_vidpost/internal/postserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	configFlag    string
	transportFlag string
	portFlag      string
)

var rootCmd = &cobra.Command{
	Use:           "go_vidpost",
	Short:         "MCP server that drafts social posts from YouTube videos.",
	RunE:          runServer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("go_vidpost %s\n", version)
	},
}

func init() {
	_ = godotenv.Load()
	rootCmd.Flags().StringVar(&configFlag, "config", "", "JSON or YAML config blob (OPENAI_API_KEY, YOUTUBE_API_KEY, LLM_PROVIDER, LLM_MODEL, LLM_API_BASE)")
	rootCmd.Flags().StringVar(&transportFlag, "transport", "", "stdio or http (default from MCP_TRANSPORT, else stdio)")
	rootCmd.Flags().StringVar(&portFlag, "port", "", "HTTP listen port (default from MCP_PORT)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	s := loadSettings(configFlag)
	if transportFlag != "" {
		s.Transport = transportFlag
	}
	if portFlag != "" {
		s.Port = portFlag
	}
	slog.SetDefault(newLogger(os.Stderr, s.LogLevel, s.LogFormat))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := engine.NewMetrics()

	tracing, err := engine.NewTracing(ctx, s.Tracing)
	if err != nil {
		slog.Warn("tracing disabled", slog.Any("error", err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(sctx); err != nil {
			slog.Warn("tracing shutdown failed", slog.Any("error", err))
		}
	}()

	completer, err := engine.NewCompleter(s.Engine, metrics)
	if err != nil {
		return err
	}

	store := keystore.New()
	store.Seed(map[keystore.Provider]string{
		keystore.Completion: s.CompletionKey,
		keystore.Transcript: s.TranscriptKey,
	})
	if !store.Has(keystore.Completion) {
		slog.Info("no completion credential configured; call set_credentials before generating content")
	}

	d := postserver.New(postserver.Deps{
		Store:   store,
		Fetcher: sources.NewYouTubeFetcher(s.Engine, metrics),
		Writer:  writer.New(completer),
		Metrics: metrics,
		Tracer:  tracing.Tracer(),
	})

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_vidpost",
		Version: version,
	}, nil)
	d.Register(server)

	slog.Info("starting go_vidpost",
		slog.String("version", version),
		slog.String("transport", s.Transport),
		slog.String("llm_provider", s.Engine.LLMProvider),
		slog.Int("tools", len(d.Tools())),
	)

	switch s.Transport {
	case "stdio":
		err = server.Run(ctx, &mcp.StdioTransport{})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case "http":
		err = mcpserver.Run(server, mcpserver.Config{
			Name:         "go_vidpost",
			Version:      version,
			Port:         s.Port,
			WriteTimeout: 300 * time.Second,
			Metrics:      metrics.Format,
		})
	default:
		return fmt.Errorf("unknown transport %q: want stdio or http", s.Transport)
	}
	if err != nil {
		slog.Error("server failed", slog.Any("error", err))
		return err
	}
	slog.Info("shutting down")
	return nil
}
