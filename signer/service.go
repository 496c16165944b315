package signer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/btcq-org/rewardpool/signer/config"
	"github.com/btcq-org/rewardpool/signer/keystore"
	"github.com/btcq-org/rewardpool/signer/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/syndtr/goleveldb/leveldb"
)

// Service represents the voucher signing service
// it wire up all the components together
type Service struct {
	cfg     config.Config
	logger  zerolog.Logger
	signer  *Signer
	journal *Journal

	// http server
	hs *http.Server

	// metrics
	metrics *metrics.Metrics

	stopOnce sync.Once
}

func NewService(cfg config.Config) (*Service, error) {
	kstore, err := keystore.Open(cfg.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store,err: %w", err)
	}
	if cfg.RootPath == "" {
		log.Warn().Msg("root_path is empty, signing with an in-memory key")
	}
	privKey, err := keystore.GetOrCreateKey(kstore, cfg.KeyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create signing key, err: %w", err)
	}
	key, err := privKey.Secp256k1()
	if err != nil {
		return nil, err
	}
	db, err := NewLevelDB(cfg.JournalPath, cfg.CompactOnInit)
	if err != nil {
		return nil, fmt.Errorf("failed to create level db: %w", err)
	}
	journal := NewJournal(db)
	m := metrics.NewMetrics()
	signer, err := NewSigner(key, cfg.AddressPrefix, cfg.AccountHRP(), cfg.Denom, journal, m)
	if err != nil {
		_ = journal.Close()
		return nil, err
	}
	return newService(cfg, signer, journal, m), nil
}

func newService(cfg config.Config, signer *Signer, journal *Journal, m *metrics.Metrics) *Service {
	s := &Service{
		cfg:     cfg,
		logger:  log.With().Str("module", "voucher_signer_service").Logger(),
		signer:  signer,
		journal: journal,
		metrics: m,
	}
	s.hs = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.registerRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Signer returns the voucher signer.
func (s *Service) Signer() *Signer {
	return s.signer
}

// Handler returns the HTTP handler of the service.
func (s *Service) Handler() http.Handler {
	return s.hs.Handler
}

// Start starts the http server in the background. Requests inherit ctx.
// The caller owns shutdown and must call Stop.
func (s *Service) Start(ctx context.Context) error {
	s.hs.BaseContext = func(net.Listener) context.Context { return ctx }
	s.logger.Info().
		Str("listen_addr", s.cfg.ListenAddr).
		Str("signer", s.signer.Address()).
		Msg("voucher signer started")
	go func() {
		if err := s.hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("failed to start http server")
		}
	}()
	return nil
}

// Stop shuts down the http server and closes the journal. Calls after the
// first are no-ops.
func (s *Service) Stop() {
	s.stopOnce.Do(s.stop)
}

func (s *Service) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.hs.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to shutdown http server")
	}
	if err := s.journal.Close(); err != nil && !errors.Is(err, leveldb.ErrClosed) {
		s.logger.Error().Err(err).Msg("failed to close journal")
	}
	s.logger.Info().Msg("voucher signer stopped")
}
