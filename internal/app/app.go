package app

import (
	"log/slog"

	"NewsVerifier/internal/collector"
	"NewsVerifier/internal/config"
	"NewsVerifier/internal/infrastructure/extract"
	"NewsVerifier/internal/infrastructure/ml"
	"NewsVerifier/internal/infrastructure/newsapi"
	"NewsVerifier/internal/logging"
	"NewsVerifier/internal/reputation"
	"NewsVerifier/internal/server"
	"NewsVerifier/internal/usecase"
)

// Application wires configuration to adapters, use cases and the HTTP server.
type Application struct {
	cfg config.Config
	srv *server.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	sets := reputation.NewSets(cfg.Reputation.TrustedDomains, cfg.Reputation.UntrustedDomains)
	extractor := extract.New(nil, baseLogger.With("component", "extract"))

	classifier := ml.NewClient(cfg.Classifier.URL, cfg.Classifier.APIKey)
	searcher := newsapi.NewClient(cfg.NewsAPI.URL, cfg.NewsAPI.APIKey)

	classification := collector.NewClassification(classifier, baseLogger.With("component", "classification"))
	verification := collector.NewVerification(searcher, sets, baseLogger.With("component", "verification"))

	analyzer := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Normalizer:     extractor,
		Classification: classification,
		Verification:   verification,
		Summarizer:     classifier,
		Reputation:     sets,
		Logger:         baseLogger.With("component", "analyze"),
	})
	summarizer := usecase.NewSummarizer(extractor, classifier)
	similar := usecase.NewSimilarFinder(searcher)

	classifierReady := cfg.Classifier.URL != ""

	srv := server.New(cfg.Server, server.Deps{
		Analyzer:        analyzer,
		Summarizer:      summarizer,
		Similar:         similar,
		Logger:          baseLogger.With("component", "server"),
		ClassifierReady: classifierReady,
		SummarizerReady: classifierReady,
	})

	return &Application{cfg: cfg, srv: srv}
}

// Run starts the HTTP listener and blocks until shutdown.
func (a *Application) Run() error {
	return a.srv.ListenAndServe(a.cfg.Server.Addr)
}
