package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	memorycache "github.com/davidbz/sixteen/internal/cache/memory"
	rediscache "github.com/davidbz/sixteen/internal/cache/redis"
	"github.com/davidbz/sixteen/internal/config"
	"github.com/davidbz/sixteen/internal/domain"
	"github.com/davidbz/sixteen/internal/http"
	"github.com/davidbz/sixteen/internal/http/middleware"
	"github.com/davidbz/sixteen/internal/observability"
	"github.com/davidbz/sixteen/internal/pricing"
	"github.com/davidbz/sixteen/internal/provider/echo"
	"github.com/davidbz/sixteen/internal/provider/openai"
)

// defaultModel is used in one-shot mode when no -model flag is given.
const defaultModel = "gpt-4o"

func main() {
	imagePath := flag.String("image", "", "solve one local puzzle image and exit")
	model := flag.String("model", "", "model identifier for one-shot mode")
	prompt := flag.String("prompt", "", "override the default puzzle instruction")
	flag.Parse()

	container := buildContainer()

	if *imagePath != "" {
		err := container.Invoke(func(cfg *config.Config, solver *domain.SolverService) error {
			return solveOnce(cfg, solver, *imagePath, *model, *prompt)
		})
		if err != nil {
			log.Fatalf("Solve failed: %v", err)
		}
		return
	}

	err := container.Invoke(func(server *http.Server) {
		if startErr := server.Start(); startErr != nil {
			log.Fatalf("Server failed to start: %v", startErr)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Pricing catalog. Loading is best-effort: a missing or broken catalog
	// means built-in fallback pricing, never a startup failure.
	if err := container.Provide(func(cfg *config.PricingConfig, logger *zap.Logger) domain.Catalog {
		if cfg.CatalogSource == "" {
			return nil
		}
		catalog, loadErr := pricing.Load(context.Background(), cfg.CatalogSource)
		if loadErr != nil {
			logger.Warn("pricing catalog unavailable, using built-in pricing",
				zap.String("source", cfg.CatalogSource),
				zap.Error(loadErr))
			return nil
		}
		logger.Info("pricing catalog loaded", zap.Int("models", len(catalog)))
		return catalog
	}); err != nil {
		log.Fatalf("Failed to provide pricing catalog: %v", err)
	}

	if err := container.Provide(func(catalog domain.Catalog, events domain.EventPublisher) domain.CostCalculator {
		return domain.NewStandardCostCalculator(catalog, events)
	}); err != nil {
		log.Fatalf("Failed to provide cost calculator: %v", err)
	}

	// Vision provider: OpenAI when configured, echo otherwise so the service
	// stays runnable without credentials.
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (domain.VisionProvider, error) {
		if cfg.OpenAI.APIKey == "" {
			logger.Warn("OPENAI_API_KEY not set, using echo provider")
			return echo.NewProvider(), nil
		}
		return openai.NewProvider(cfg.OpenAI)
	}); err != nil {
		log.Fatalf("Failed to provide vision provider: %v", err)
	}

	// Result cache: Redis when configured, in-memory LRU otherwise.
	if err := container.Provide(func(cfg *config.CacheConfig) (domain.ResultCache, error) {
		if cfg.RedisAddr != "" {
			client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
			return rediscache.NewResultCache(client), nil
		}
		return memorycache.NewResultCache(cfg.MaxSize)
	}); err != nil {
		log.Fatalf("Failed to provide result cache: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		provider domain.VisionProvider,
		calculator domain.CostCalculator,
		cache domain.ResultCache,
		cfg *config.CacheConfig,
	) *domain.SolverService {
		return domain.NewSolverService(provider, calculator, cache, time.Duration(cfg.TTL)*time.Second)
	}); err != nil {
		log.Fatalf("Failed to provide solver service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(func(corsConfig *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsConfig)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// solveOnce runs a single solve against a local image or URL and prints the
// result as JSON.
func solveOnce(cfg *config.Config, solver *domain.SolverService, imagePath, model, prompt string) error {
	image, err := encodeImage(imagePath)
	if err != nil {
		return err
	}

	if model == "" {
		model = defaultModel
		if cfg.OpenAI.APIKey == "" {
			model = echo.ModelName
		}
	}

	ctx := observability.WithModel(context.Background(), model)
	result, err := solver.Solve(ctx, &domain.SolveRequest{
		Model:  model,
		Image:  image,
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// encodeImage inlines a local image file as a base64 data URI. URLs and data
// URIs pass through untouched.
func encodeImage(path string) (string, error) {
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "data:") {
		return path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
