package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"shopseva/config"
	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"
	"shopseva/internal/domain/service"
	"shopseva/internal/errors"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMinPasswordLen = 6

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	verifier       service.IdentityVerifier
	admin          *config.AdminConfig
	minPasswordLen int
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minLen := defaultMinPasswordLen
	var admin *config.AdminConfig
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.MinPasswordLen > 0 {
			minLen = params.Config.Auth.MinPasswordLen
		}
		admin = params.Config.Admin
	}

	return &authService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		verifier:       params.Verifier,
		admin:          admin,
		minPasswordLen: minLen,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterShopkeeper creates a password account. The administrator email is reserved.
func (srv *authService) RegisterShopkeeper(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if utf8.RuneCountInString(input.Password) < srv.minPasswordLen {
		return nil, domainerrors.ErrPasswordStrength.WithDetails("minimum length is " + strconv.Itoa(srv.minPasswordLen))
	}
	if srv.isAdminEmail(email) {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         entity.RoleShopkeeper,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("Shopkeeper registered", slog.Any("userID", user.ID))

	return srv.issue(userIdentity(user), user.Email)
}

// Login checks the configured administrator first, then shopkeeper accounts.
// Every mismatch answers the same invalid-credentials error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := normalizeEmail(input.Email)

	if srv.isAdminEmail(email) {
		if srv.admin.PasswordHash == "" || !srv.hasher.Check(input.Password, srv.admin.PasswordHash) {
			srv.log(ctx).Warn("Administrator login failed")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return srv.issue(srv.adminIdentity(), email)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Shopkeeper login failed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(userIdentity(user), user.Email)
}

// FirebaseLogin verifies the ID token, then finds the linked account, links an
// account with the same email, or creates a new shopkeeper. An email the
// provider has not verified is refused before any lookup by email.
func (srv *authService) FirebaseLogin(ctx context.Context, idToken string) (*usecase.AuthResult, error) {
	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByFirebaseUID(ctx, identity.UID)
	switch {
	case err == nil:
		return srv.issue(userIdentity(user), user.Email)
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	email := normalizeEmail(identity.Email)
	if email != "" && !identity.EmailVerified {
		srv.log(ctx).Warn("Federated login with unverified email refused", slog.String("uid", identity.UID))

		return nil, domainerrors.ErrEmailNotVerified
	}
	if email != "" {
		user, err = srv.userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			user.FirebaseUID = identity.UID
			user.UpdatedAt = srv.now()
			if err := srv.userRepo.Update(ctx, user); err != nil {
				return nil, errors.Wrap(err, "failed to link firebase identity")
			}
			srv.log(ctx).Info("Linked federated identity", slog.Any("userID", user.ID))

			return srv.issue(userIdentity(user), user.Email)
		case !errors.Is(err, domainerrors.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to find user by email")
		}
	}

	now := srv.now()
	user = &entity.User{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(identity.Name),
		Email:       email,
		Phone:       identity.Phone,
		Role:        entity.RoleShopkeeper,
		FirebaseUID: identity.UID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create federated user")
	}

	srv.log(ctx).Info("Federated shopkeeper created", slog.Any("userID", user.ID))

	return srv.issue(userIdentity(user), user.Email)
}

func (srv *authService) issue(identity entity.Identity, email string) (*usecase.AuthResult, error) {
	token, err := srv.tokenService.GenerateAccessToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthResult{
		UserID:      identity.UserID,
		Name:        identity.Name,
		Email:       email,
		Roles:       identity.Roles,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

func (srv *authService) isAdminEmail(email string) bool {
	return srv.admin != nil && srv.admin.Email != "" && strings.EqualFold(srv.admin.Email, email)
}

// adminIdentity derives a stable ID from the configured email since the
// administrator has no stored account.
func (srv *authService) adminIdentity() entity.Identity {
	name := srv.admin.Name
	if name == "" {
		name = "Administrator"
	}

	return entity.Identity{
		UserID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("shopseva:admin:"+normalizeEmail(srv.admin.Email))),
		Name:   name,
		Roles:  entity.Roles{entity.RoleAdmin},
	}
}

func userIdentity(user *entity.User) entity.Identity {
	return entity.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Roles:  entity.Roles{user.Role.OrShopkeeper()},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
