package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/remsodo/internal/auth"
	"github.com/alexanderramin/remsodo/internal/cli"
	"github.com/alexanderramin/remsodo/internal/config"
	"github.com/alexanderramin/remsodo/internal/db"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/alexanderramin/remsodo/internal/mail"
	"github.com/alexanderramin/remsodo/internal/repository"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/alexanderramin/remsodo/internal/storage"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Getenv("REMSODO_ENV_FILE"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Wire repositories
	users := repository.NewStoreUserRepo(store)
	sessions := repository.NewStoreSessionRepo(store)
	prefs := repository.NewStorePreferenceRepo(store)
	enrollments := repository.NewStoreEnrollmentRepo(store)
	progress := repository.NewStoreProgressRepo(store)
	drafts := repository.NewStoreQuizDraftRepo(store)
	cache := repository.NewStoreContentCacheRepo(store)
	chats := repository.NewStoreChatRepo(store)

	// Wire the model client. Without an API key every call fails with
	// llm.ErrMissingAPIKey and the commands report it.
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client := llm.NewGeminiClient(cfg.LLM, observer)
	generator := intelligence.NewCourseGenerator(client)
	assistant := intelligence.NewAssistant(intelligence.NewChatService(client))

	var mailer mail.Mailer = mail.NewLogMailer(logger)
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom)
	}

	// Wire services
	obs := service.NewLogUseCaseObserver(logger)
	tokens := auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL)

	app := &cli.App{
		Auth:      service.NewAuthService(users, sessions, prefs, tokens, mailer, obs),
		Courses:   service.NewCourseService(enrollments, progress, obs),
		Quiz:      service.NewQuizService(drafts, obs),
		Catalog:   service.NewCatalogService(generator, cache, obs),
		Views:     service.NewViewService(generator, cache, prefs, enrollments, progress, obs),
		Authoring: service.NewAuthoringService(generator, enrollments, cache, obs),
		Chat:      service.NewChatService(assistant, chats, obs),

		IsInteractive: func() bool {
			in, out := os.Stdin.Fd(), os.Stdout.Fd()
			return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
				(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
		},
		ReadPassword: term.ReadPassword,
		TermWidth: func() int {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 0
			}
			return w
		},
	}

	err = cli.NewRootCmd(app).ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openStore returns the configured key-value store and its closer.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, io.Closer, error) {
	switch cfg.Store {
	case config.StoreRedis:
		rs, err := storage.NewRedisStore(ctx, storage.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.RedisNamespace,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis store: %w", err)
		}
		return rs, rs, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return storage.NewSQLiteStore(database, db.NewSQLiteUnitOfWork(database)), database, nil
	}
}
