package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/ptr"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/user"
	mUser "github.com/campus-auction/goapi/domain/user/mocks"
)

type UserUseCaseTestSuite struct {
	suite.Suite

	repo *mUser.Repo
	im   user.Usecase
}

func (s *UserUseCaseTestSuite) SetupTest() {
	s.repo = &mUser.Repo{}
	s.im = NewUserUseCase(&UserUseCaseCfg{
		Repo:               s.repo,
		AllowedEmailDomain: "kiit.ac.in",
	})
}

func (s *UserUseCaseTestSuite) registerParams() *user.RegisterParams {
	return &user.RegisterParams{
		Name:     "Asha",
		Password: "secret-pass",
		Email:    "21052000@kiit.ac.in",
		Phone:    "9999999999",
		Hostel:   "KP-6",
		Batch:    "2021",
		Branch:   "CSE",
	}
}

func (s *UserUseCaseTestSuite) TestRegisterHashesPassword() {
	s.repo.On("FindOneByEmail", mock.Anything, domain.Email("21052000@kiit.ac.in")).Return(nil, domain.ErrUserNotFound)
	s.repo.On("FindOneByPhone", mock.Anything, "9999999999").Return(nil, domain.ErrUserNotFound)
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	u, err := s.im.Register(ctx.Background(), s.registerParams())
	s.NoError(err)
	s.NotEmpty(u.Id)
	s.NotEqual("secret-pass", u.Password)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret-pass")))
}

func (s *UserUseCaseTestSuite) TestRegisterRejectsOutsideDomain() {
	p := s.registerParams()
	p.Email = "someone@gmail.com"

	_, err := s.im.Register(ctx.Background(), p)
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *UserUseCaseTestSuite) TestRegisterNormalizesEmailCase() {
	p := s.registerParams()
	p.Email = "21052000@KIIT.AC.IN"

	s.repo.On("FindOneByEmail", mock.Anything, domain.Email("21052000@kiit.ac.in")).Return(nil, domain.ErrUserNotFound)
	s.repo.On("FindOneByPhone", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	u, err := s.im.Register(ctx.Background(), p)
	s.NoError(err)
	s.Equal(domain.Email("21052000@kiit.ac.in"), u.Email)
}

func (s *UserUseCaseTestSuite) TestRegisterRejectsDuplicateEmail() {
	existing := &user.User{Id: "user-1", Email: "21052000@kiit.ac.in"}
	s.repo.On("FindOneByEmail", mock.Anything, domain.Email("21052000@kiit.ac.in")).Return(existing, nil)

	_, err := s.im.Register(ctx.Background(), s.registerParams())
	s.ErrorIs(err, domain.ErrEmailTaken)
}

func (s *UserUseCaseTestSuite) TestRegisterRejectsDuplicatePhone() {
	existing := &user.User{Id: "user-1", Phone: "9999999999"}
	s.repo.On("FindOneByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	s.repo.On("FindOneByPhone", mock.Anything, "9999999999").Return(existing, nil)

	_, err := s.im.Register(ctx.Background(), s.registerParams())
	s.ErrorIs(err, domain.ErrPhoneTaken)
}

func (s *UserUseCaseTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	s.NoError(err)
	stored := &user.User{Id: "user-1", Email: "21052000@kiit.ac.in", Password: string(hashed)}
	s.repo.On("FindOneByEmail", mock.Anything, domain.Email("21052000@kiit.ac.in")).Return(stored, nil)

	u, err := s.im.Login(ctx.Background(), "21052000@kiit.ac.in", "secret-pass")
	s.NoError(err)
	s.Equal(domain.UserId("user-1"), u.Id)

	_, err = s.im.Login(ctx.Background(), "21052000@kiit.ac.in", "wrong-pass")
	s.ErrorIs(err, domain.ErrInvalidCredentials)
}

func (s *UserUseCaseTestSuite) TestLoginUnknownUser() {
	s.repo.On("FindOneByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := s.im.Login(ctx.Background(), "ghost@kiit.ac.in", "whatever")
	s.ErrorIs(err, domain.ErrUserNotFound)
}

func (s *UserUseCaseTestSuite) TestChangePasswordRequiresOldPassword() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	s.NoError(err)
	stored := &user.User{Id: "user-1", Password: string(hashed)}
	s.repo.On("FindOne", mock.Anything, domain.UserId("user-1")).Return(stored, nil)

	err = s.im.ChangePassword(ctx.Background(), "user-1", "wrong-pass", "new-pass")
	s.ErrorIs(err, domain.ErrInvalidCredentials)
	s.repo.AssertNotCalled(s.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserUseCaseTestSuite) TestChangePassword() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	s.NoError(err)
	stored := &user.User{Id: "user-1", Password: string(hashed)}
	s.repo.On("FindOne", mock.Anything, domain.UserId("user-1")).Return(stored, nil)
	s.repo.On("UpdatePassword", mock.Anything, domain.UserId("user-1"), mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte("new-pass")) == nil
	})).Return(nil)

	s.NoError(s.im.ChangePassword(ctx.Background(), "user-1", "old-pass", "new-pass"))
}

func (s *UserUseCaseTestSuite) TestUpdateReturnsFreshProfile() {
	updater := &user.Updater{Hostel: ptr.String("KP-7")}
	updated := &user.User{Id: "user-1", Hostel: "KP-7"}
	s.repo.On("Update", mock.Anything, domain.UserId("user-1"), updater).Return(nil)
	s.repo.On("FindOne", mock.Anything, domain.UserId("user-1")).Return(updated, nil)

	u, err := s.im.Update(ctx.Background(), "user-1", updater)
	s.NoError(err)
	s.Equal("KP-7", u.Hostel)
}

func (s *UserUseCaseTestSuite) TestIncrementCompletedSalesRecomputesTrustScore() {
	counters := &user.Counters{TotalAuctions: 4, CompletedSales: 3}
	s.repo.On("IncrementCounter", mock.Anything, domain.UserId("user-1"), "completedSales", int32(1)).Return(counters, nil)
	s.repo.On("SetTrustScore", mock.Anything, domain.UserId("user-1"), float64(75)).Return(nil)

	s.NoError(s.im.IncrementCompletedSales(ctx.Background(), "user-1"))
	s.repo.AssertCalled(s.T(), "SetTrustScore", mock.Anything, domain.UserId("user-1"), float64(75))
}

func (s *UserUseCaseTestSuite) TestIncrementTotalAuctionsDoesNotTouchTrustScore() {
	counters := &user.Counters{TotalAuctions: 5, CompletedSales: 3}
	s.repo.On("IncrementCounter", mock.Anything, domain.UserId("user-1"), "totalAuctions", int32(1)).Return(counters, nil)

	s.NoError(s.im.IncrementTotalAuctions(ctx.Background(), "user-1"))
	s.repo.AssertNotCalled(s.T(), "SetTrustScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}

func TestTrustScore(t *testing.T) {
	tests := []struct {
		desc     string
		counters user.Counters
		exp      float64
	}{
		{"zero auctions", user.Counters{}, 0},
		{"no sales", user.Counters{TotalAuctions: 3}, 0},
		{"half", user.Counters{TotalAuctions: 4, CompletedSales: 2}, 50},
		{"all sold", user.Counters{TotalAuctions: 2, CompletedSales: 2}, 100},
	}
	for _, tc := range tests {
		if got := tc.counters.TrustScore(); got != tc.exp {
			t.Errorf("%s: got %v, want %v", tc.desc, got, tc.exp)
		}
	}
}
