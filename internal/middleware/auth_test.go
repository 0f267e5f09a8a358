package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finledger/internal/config"
	"finledger/internal/handlers"
	"finledger/internal/models"
	"finledger/internal/repositories/repository_mocks"
	"finledger/internal/services"
	"finledger/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *repository_mocks.MockUserRepositoryInterface
	authService  services.AuthServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)

	jwtConfig := &config.JWTConfig{
		Secret:              "middleware-test-secret",
		AccessTokenDuration: time.Hour,
		Issuer:              "finledger",
	}
	s.authService = services.NewAuthService(s.mockUserRepo, jwtConfig, bcrypt.MinCost, services.NoopMetrics{})
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

// issueToken signs in a fixture user through the given service and returns a real token
func (s *AuthMiddlewareSuite) issueToken(svc services.AuthServiceInterface) (string, uuid.UUID) {
	hash, err := bcrypt.GenerateFromPassword([]byte("str0ng-enough"), bcrypt.MinCost)
	s.Require().NoError(err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Status:       models.UserStatusApproved,
	}
	s.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)

	token, _, err := svc.Login("ana@example.com", "str0ng-enough")
	s.Require().NoError(err)
	return token, user.ID
}

func (s *AuthMiddlewareSuite) run(authHeader string) (*httptest.ResponseRecorder, bool, session.Session) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	reached := false
	var sess session.Session
	handler := RequireAuth(s.authService)(func(c echo.Context) error {
		reached = true
		sess, _ = c.Get(handlers.SessionContextKey).(session.Session)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, reached, sess
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, userID := s.issueToken(s.authService)

	rec, reached, sess := s.run("Bearer " + token)

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().True(reached)
	s.Assert().Equal(userID, sess.UserID)
	s.Assert().Equal("ana@example.com", sess.Email)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, reached, _ := s.run("")

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
	s.Assert().False(reached)
	s.Assert().Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_NotBearer() {
	rec, reached, _ := s.run("Basic dXNlcjpwYXNz")

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
	s.Assert().False(reached)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	rec, reached, _ := s.run("Bearer not.a.real.token")

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
	s.Assert().False(reached)
	s.Assert().Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expiredConfig := &config.JWTConfig{
		Secret:              "middleware-test-secret",
		AccessTokenDuration: -time.Minute,
		Issuer:              "finledger",
	}
	expiredService := services.NewAuthService(s.mockUserRepo, expiredConfig, bcrypt.MinCost, services.NoopMetrics{})
	token, _ := s.issueToken(expiredService)

	rec, reached, _ := s.run("Bearer " + token)

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
	s.Assert().False(reached)
	s.Assert().Contains(rec.Body.String(), "AUTH_003")
}
