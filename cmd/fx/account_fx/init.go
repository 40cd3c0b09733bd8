package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trailbook/internal/api/controllers"
	"trailbook/internal/config"
	"trailbook/internal/repositories"
	"trailbook/internal/services"
	mem "trailbook/pkg/memcache"
	"trailbook/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAccountRepo, provideGoogleVerifier, provideAccountService, provideAccountController)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideGoogleVerifier(cfg *config.Config) services.IDTokenVerifier {
	return services.NewGoogleVerifier(cfg.Auth.GoogleClientID)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	verifier services.IDTokenVerifier,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	cfg *config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, verifier, tokens, revoked, cfg.Media.BaseURL)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
