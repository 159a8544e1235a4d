package services

import (
	"context"
	"errors"
	"testing"
	"time"

	uuidmocks "github.com/ArowuTest/raffle-backend/internal/common/uuid/mocks"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories/memory"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	tokens  *jwt.Manager
	service AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	clk := tickingClock(ctrl, time.Now().UTC())
	ids := uuidmocks.NewMockUUID(ctrl)
	ids.EXPECT().NewUUID().Return("operator-1").AnyTimes()

	tokens, err := jwt.NewManager("test-secret", time.Hour, nil)
	s.Require().NoError(err)
	s.tokens = tokens

	s.store = memory.NewStore()
	s.service = NewAuthService(NewPasswordAuthenticator(s.store.AdminUsers()), s.store.AdminUsers(), tokens, clk, ids)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestSeedAndLogin() {
	ctx := context.Background()
	s.Require().NoError(s.service.SeedOperator(ctx, OperatorSeed{Email: " Ops@Example.com ", Password: "s3cret!"}))

	resp, err := s.service.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "s3cret!"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)

	claims, err := s.tokens.Parse(resp.Token)
	s.Require().NoError(err)
	s.Equal("operator-1", claims.Subject)
	s.Equal("ops@example.com", claims.Email)
	s.Equal(models.RoleOperator, claims.Role)
}

func (s *AuthServiceTestSuite) TestInvalidCredentials() {
	ctx := context.Background()
	s.Require().NoError(s.service.SeedOperator(ctx, OperatorSeed{Email: "ops@example.com", Password: "s3cret!"}))

	_, err := s.service.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "wrong-password"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "s3cret!"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestSeedWithHash() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.Require().NoError(s.service.SeedOperator(ctx, OperatorSeed{Email: "ops@example.com", Password: "ignored", PasswordHash: string(hash)}))

	_, err = s.service.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "from-hash"})
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestSeedValidation() {
	ctx := context.Background()
	s.NoError(s.service.SeedOperator(ctx, OperatorSeed{}))
	s.Error(s.service.SeedOperator(ctx, OperatorSeed{Email: "ops@example.com"}))
	s.Error(s.service.SeedOperator(ctx, OperatorSeed{Email: "ops@example.com", PasswordHash: "plain"}))
}

type stubIssuer struct{}

func (stubIssuer) Issue(string, string, string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("signing failed")
}

func (s *AuthServiceTestSuite) TestLoginTokenFailure() {
	ctx := context.Background()
	s.Require().NoError(s.service.SeedOperator(ctx, OperatorSeed{Email: "ops@example.com", Password: "s3cret!"}))

	svc := NewAuthService(NewPasswordAuthenticator(s.store.AdminUsers()), s.store.AdminUsers(), stubIssuer{}, nil, nil)
	_, err := svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "s3cret!"})
	s.Error(err)
	s.NotErrorIs(err, ErrInvalidCredentials)
}
