package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"trailbook/internal/logging"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/request_models"
	"trailbook/internal/models/response_models"
	"trailbook/internal/repositories"
	mem "trailbook/pkg/memcache"
	"trailbook/pkg/utils"
)

type AccountServiceInterface interface {
	GoogleLogin(ctx context.Context, credential string) (*response_models.TokenPairResponse, error)
	RefreshAccessToken(ctx context.Context, refresh string) (*response_models.AccessTokenResponse, error)
	Logout(ctx context.Context, refresh string) error
	GetMe(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	verifier     IDTokenVerifier
	tokens       *utils.TokenIssuer
	revoked      mem.RevokedTokenStore
	mediaBaseURL string
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	verifier IDTokenVerifier,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	mediaBaseURL string,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		verifier:     verifier,
		tokens:       tokens,
		revoked:      revoked,
		mediaBaseURL: mediaBaseURL,
	}
}

// GoogleLogin exchanges a Google ID token for a session token pair, creating
// the account on first sign-in. Names are only backfilled when still empty.
func (a *AccountService) GoogleLogin(ctx context.Context, credential string) (*response_models.TokenPairResponse, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, utils.ErrCredentialRequired
	}

	identity, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("google token rejected")
		return nil, utils.ErrInvalidGoogleToken
	}
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, utils.ErrGoogleEmailMissing
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if account == nil {
		account = &db_models.Account{
			Email:     email,
			FirstName: identity.GivenName,
			LastName:  identity.FamilyName,
		}
		if err := a.accountRepo.Insert(ctx, account); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			// Lost a race with a concurrent first sign-in.
			if account, err = a.accountRepo.FindByEmail(ctx, email); err != nil || account == nil {
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
		} else {
			logging.Ctx(ctx).Info().Str("account_id", account.ID.String()).Msg("account created via google")
		}
	} else if backfillNames(account, identity) {
		if err := a.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	access, err := a.tokens.CreateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := a.tokens.CreateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &response_models.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func backfillNames(account *db_models.Account, identity *GoogleIdentity) bool {
	changed := false
	if account.FirstName == "" && identity.GivenName != "" {
		account.FirstName = identity.GivenName
		changed = true
	}
	if account.LastName == "" && identity.FamilyName != "" {
		account.LastName = identity.FamilyName
		changed = true
	}
	return changed
}

func (a *AccountService) RefreshAccessToken(ctx context.Context, refresh string) (*response_models.AccessTokenResponse, error) {
	claims, err := a.validRefresh(refresh)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrInvalidToken
	}

	access, err := a.tokens.CreateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &response_models.AccessTokenResponse{Access: access}, nil
}

// Logout revokes the refresh token until it would have expired on its own.
func (a *AccountService) Logout(ctx context.Context, refresh string) error {
	claims, err := a.validRefresh(refresh)
	if err != nil {
		return err
	}

	ttl := a.tokens.RefreshTTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	a.revoked.Revoke(claims.ID, ttl)
	logging.Ctx(ctx).Info().Str("account_id", claims.UserID).Msg("refresh token revoked")
	return nil
}

func (a *AccountService) validRefresh(refresh string) (*utils.Claims, error) {
	claims, err := a.tokens.ValidateToken(refresh, utils.TokenTypeRefresh)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	if claims.ID == "" || a.revoked.IsRevoked(claims.ID) {
		return nil, utils.ErrInvalidToken
	}
	return claims, nil
}

func (a *AccountService) GetMe(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return a.accountResponse(account), nil
}

func (a *AccountService) UpdateMe(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.Bio != nil {
		account.Bio = *req.Bio
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return a.accountResponse(account), nil
}

func (a *AccountService) accountResponse(account *db_models.Account) *response_models.AccountResponse {
	resp := &response_models.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Bio:       account.Bio,
	}
	if account.Avatar != "" {
		url := ResolveMediaURL(a.mediaBaseURL, account.Avatar)
		resp.Avatar = &url
	}
	return resp
}
