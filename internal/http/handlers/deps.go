package handlers

import (
	"github.com/jmoiron/sqlx"

	"lojabase/internal/auth"
	"lojabase/internal/config"
	"lojabase/internal/repos"
	"lojabase/internal/services"
)

type Deps struct {
	Tokens          *auth.TokenService
	AuthHandler     *AuthHandler
	ProductHandler  *ProductHandler
	CustomerHandler *CustomerHandler
}

// NewDeps wires repositories, services and handlers. The signing secret comes
// from cfg; nothing is read from the environment here.
func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	return NewDepsWithTokens(db, cfg, tokens), nil
}

// NewDepsWithTokens is NewDeps with a caller-supplied token service.
func NewDepsWithTokens(db *sqlx.DB, cfg config.Config, tokens *auth.TokenService) *Deps {
	hasher := auth.NewHasher(cfg.BcryptCost)
	prodRepo := repos.NewProductRepo(db)
	custRepo := repos.NewCustomerRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	authSvc := services.NewAuthService(custRepo, hasher, tokens)
	custSvc := services.NewCustomerService(custRepo, hasher)

	return &Deps{
		Tokens:          tokens,
		AuthHandler:     &AuthHandler{Auth: authSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CustomerHandler: &CustomerHandler{Customers: custSvc},
	}
}
