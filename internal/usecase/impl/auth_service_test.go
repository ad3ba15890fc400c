package impl

import (
	"context"
	"testing"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/service"
	mockRepo "shopseva/internal/mocks/repository"
	mockService "shopseva/internal/mocks/service"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	verifier     *mockService.MockIdentityVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		verifier:     mockService.NewMockIdentityVerifier(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Verifier:     fx.verifier,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	fx.service.(*authService).now = func() time.Time { return fixedNow }

	return fx
}

func issuedToken() *service.IssuedToken {
	return &service.IssuedToken{AccessToken: "signed.jwt.token", ExpiresAt: fixedNow.Add(24 * time.Hour)}
}

func TestAuthService_RegisterShopkeeper(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "meera@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "meera@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleShopkeeper
		})).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.MatchedBy(func(id entity.Identity) bool {
			return id.Roles.Contains(entity.RoleShopkeeper) && !id.IsAdmin()
		})).
		Return(issuedToken(), nil)

	result, err := fx.service.RegisterShopkeeper(ctx, &usecase.RegisterInput{
		Name:     "Meera",
		Email:    " Meera@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.AccessToken)
	assert.Equal(t, "meera@example.com", result.Email)
}

func TestAuthService_RegisterShopkeeper_Rejections(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterShopkeeper(ctx, &usecase.RegisterInput{Email: "a@b.com", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	_, err = fx.service.RegisterShopkeeper(ctx, &usecase.RegisterInput{Email: "ADMIN@shopseva.test", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	_, err = fx.service.RegisterShopkeeper(ctx, &usecase.RegisterInput{Email: "taken@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Admin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Check("right", "admin-hash").Return(true)
	fx.hasher.EXPECT().Check("wrong", "admin-hash").Return(false)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.MatchedBy(func(id entity.Identity) bool { return id.IsAdmin() })).
		Return(issuedToken(), nil)

	result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@shopseva.test", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, result.Roles)

	again, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@shopseva.test", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, result.UserID, again.UserID, "administrator id must be stable")

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@shopseva.test", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Shopkeeper(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Meera", Email: "meera@example.com", Role: entity.RoleShopkeeper, PasswordHash: "hashed"}
	federated := &entity.User{ID: uuid.New(), Email: "fed@example.com", Role: entity.RoleShopkeeper, FirebaseUID: "uid-1"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "meera@example.com").Return(user, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "fed@example.com").Return(federated, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return(issuedToken(), nil)

	result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "meera@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "fed@example.com", Password: "anything"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_FirebaseLogin_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedIdentity{UID: "uid-9", Email: "New@Example.com", EmailVerified: true, Name: "Kiran"}, nil)
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "uid-9").Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.FirebaseUID == "uid-9" && u.PasswordHash == "" })).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return(issuedToken(), nil)

	result, err := fx.service.FirebaseLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "Kiran", result.Name)
}

func TestAuthService_FirebaseLogin_LinksExistingEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "meera@example.com", Role: entity.RoleShopkeeper, PasswordHash: "hashed"}

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedIdentity{UID: "uid-2", Email: "meera@example.com", EmailVerified: true}, nil)
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "uid-2").Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "meera@example.com").Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.FirebaseUID == "uid-2" })).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return(issuedToken(), nil)

	result, err := fx.service.FirebaseLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.UserID)
}

func TestAuthService_FirebaseLogin_UnverifiedEmailNotLinked(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedIdentity{UID: "uid-3", Email: "meera@example.com", EmailVerified: false}, nil)
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "uid-3").Return(nil, domainerrors.ErrUserNotFound)

	result, err := fx.service.FirebaseLogin(ctx, "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	assert.Nil(t, result)
}

func TestAuthService_FirebaseLogin_PhoneOnlyCreatesUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedIdentity{UID: "uid-4", Phone: "+919825012345"}, nil)
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "uid-4").Return(nil, domainerrors.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.FirebaseUID == "uid-4" && u.Email == "" })).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return(issuedToken(), nil)

	_, err := fx.service.FirebaseLogin(ctx, "id-token")
	require.NoError(t, err)
}

func TestAuthService_FirebaseLogin_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrIDTokenInvalid)

	_, err := fx.service.FirebaseLogin(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrIDTokenInvalid)
}
