package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/accountability/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	challengeService   service.ChallengeServiceI
	walletService      service.WalletServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	ChallengeService   service.ChallengeServiceI
	WalletService      service.WalletServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		challengeService:   servicesOptions.ChallengeService,
		walletService:      servicesOptions.WalletService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

		r.Post("/auth/signup", s.Signup)
		r.Post("/auth/signin", s.Signin)

		// The leaderboard is world-readable
		r.Get("/leaderboard", s.GetLeaderboard)
		r.Get("/leaderboard/user/{userId}", s.GetUserRank)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/auth/me", s.GetMe)

			r.Get("/challenges", s.GetChallenges)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Post("/challenges/{id}/join", s.JoinChallenge)
			r.Post("/challenges/{id}/progress", s.RecordProgress)
			r.Post("/challenges/{id}/payment", s.MarkPayment)

			r.Get("/wallet", s.GetWallet)
			r.Get("/wallet/transactions", s.GetTransactionHistory)
			r.Post("/wallet/deposit", s.Deposit)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the router for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
