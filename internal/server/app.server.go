package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cotisation-service/internal/config"
	"cotisation-service/internal/domain"
	"cotisation-service/internal/handler"
	"cotisation-service/internal/otp"
	"cotisation-service/internal/repository"
	"cotisation-service/internal/router"
	"cotisation-service/internal/session"
	"cotisation-service/internal/usecase"
	"cotisation-service/internal/ws"
)

type Server struct {
	HTTP *http.Server
}

func NewServer(cfg config.AppConfig, log *zap.Logger) *Server {
	// --- Stores (in-memory demo fixtures) ---
	banks := repository.NewBankRepo(repository.SeedBanks())
	identities := repository.NewIdentityRepo(repository.SeedIdentities())
	contributions := repository.NewContributionRepo(repository.SeedContributions())

	// --- Session store ---
	var sessions session.Store
	if cfg.SessionBackend == "redis" {
		sessions = session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass)
	} else {
		sessions = session.NewFileStore(cfg.SessionFile)
	}

	// --- Toast hub ---
	hub := ws.NewHub(log)

	// --- Usecases ---
	registryUC := usecase.NewRegistryUsecase(identities, contributions, sessions, log)
	authUC := usecase.NewAuthUsecase(identities, sessions, hub, log)
	adminUC := usecase.NewAdminUsecase(identities, contributions, banks)

	newFlow := func(seed *domain.Identity) *usecase.OnboardingFlow {
		mgr := otp.NewManager(
			&otp.LogDelivery{Log: log, Delay: cfg.OTPSendDelay},
			cfg.OTPVerifyDelay,
			cfg.OTPCooldownSecs,
			log,
		)
		ownerID := ""
		if seed != nil {
			ownerID = seed.ID
		}
		onDone := func(p domain.Profile, c usecase.CompletedContribution, otpVerified bool) {
			if _, _, err := registryUC.CompleteOnboarding(context.Background(), ownerID, p, c); err != nil {
				log.Error("complete onboarding failed", zap.Error(err))
			}
		}
		return usecase.NewOnboardingFlow(mgr, banks.Exists, onDone, hub, log, seed)
	}

	// --- Handlers ---
	onboardingHandler := handler.NewOnboardingHandler(newFlow, authUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	adminHandler := handler.NewAdminHandler(adminUC, banks, log)

	// --- HTTP router ---
	r := chi.NewRouter()
	router.SetupRoutes(r, onboardingHandler, authHandler, adminHandler, hub)

	return &Server{
		HTTP: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: r,
		},
	}
}

func (s *Server) StartHTTP() error {
	return s.HTTP.ListenAndServe()
}
