package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"docdraft/internal/composer"
	"docdraft/internal/config"
	"docdraft/internal/draft"
	"docdraft/internal/logger"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
	"docdraft/internal/remote"
	"docdraft/internal/storage"
)

// session is the workflow shared by every subcommand.
type session struct {
	cfg       *config.AppConfig
	log       zerolog.Logger
	store     *draft.Store
	stack     *navigation.Stack
	collector *picker.Collector
	composer  *composer.Composer
	api       *remote.HTTPClient
	library   storage.MediaLibrary
}

var (
	remoteURL string
	token     string
	logLevel  string
	sess      *session
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docdraft",
		Short:         "Compose a document upload and submit it to the document API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if remoteURL != "" {
				cfg.Remote.BaseURL = remoteURL
			}
			if token != "" {
				cfg.Remote.Token = token
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			sess = s
			return nil
		},
	}

	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "document API base URL (default $REMOTE_BASE_URL)")
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token for the document API (default $REMOTE_TOKEN)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL)")

	root.AddCommand(composeCmd(), tuiCmd())
	return root
}

func newSession(cfg *config.AppConfig) (*session, error) {
	// The CLI reads the invoking user's own files, so any path is allowed unless UPLOAD_ROOT narrows it.
	if cfg.Remote.UploadRoot == "" {
		cfg.Remote.UploadRoot = string(filepath.Separator)
	}
	log := logger.New(cfg.LogLevel, os.Stderr)
	store := draft.Default()
	stack := navigation.NewStack(navigation.RouteComposer)
	api := remote.NewHTTP(cfg.Remote)

	comp := composer.New(store, api, composer.WithLogger(log.With().Str("component", "composer").Logger()))
	comp.Attach(stack)

	s := &session{
		cfg:       cfg,
		log:       log,
		store:     store,
		stack:     stack,
		collector: picker.NewCollector(store, stack,
			picker.WithLogger(log.With().Str("component", "picker").Logger()),
			picker.WithUploadRoot(cfg.Remote.UploadRoot),
		),
		composer:  comp,
		api:       api,
	}

	if cfg.MinIO.Enabled() {
		lib, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		s.library = lib
	}
	return s, nil
}

func (s *session) presignExpiry() time.Duration {
	return time.Duration(s.cfg.MinIO.PresignExpirySec) * time.Second
}
