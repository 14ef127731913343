// @title Accountability API
// @description REST backend for the "Accountability" goal-staking app
// @BasePath /api
// @schemes http
package main

import (
	"log"

	"github.com/limbo/accountability/internal/api"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/cleanup"
	"github.com/limbo/accountability/pkg/config"
	jwtservice "github.com/limbo/accountability/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	leaderboardRepo := repository.NewLeaderboardRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, leaderboardRepo),
		ChallengeService:   service.NewChallengeService(repository.NewChallengesRepo(&dbCfg), repository.NewParticipationsRepo(&dbCfg)),
		WalletService:      service.NewWalletService(usersRepo, repository.NewTransactionsRepo(&dbCfg)),
		LeaderboardService: service.NewLeaderboardService(leaderboardRepo),
		JwtService:         jwtservice.New(cfg.GetStringOr("JWT_SECRET", "dev-only-secret")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
