package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
	mAuction "github.com/campus-auction/goapi/domain/auction/mocks"
	"github.com/campus-auction/goapi/domain/user"
	mUser "github.com/campus-auction/goapi/domain/user/mocks"
	mQuery "github.com/campus-auction/goapi/service/query/mocks"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type AuctionUseCaseTestSuite struct {
	suite.Suite

	auctionRepo *mAuction.Repo
	bidRepo     *mAuction.BidRepo
	userUC      *mUser.Usecase
	q           *mQuery.Mongo
	im          auction.UseCase
}

func (s *AuctionUseCaseTestSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.bidRepo = &mAuction.BidRepo{}
	s.userUC = &mUser.Usecase{}
	s.q = &mQuery.Mongo{}
	s.im = NewAuctionUseCase(&AuctionUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		BidRepo:     s.bidRepo,
		UserUC:      s.userUC,
		Query:       s.q,
	})
	timeNow = func() time.Time { return testNow }
}

func (s *AuctionUseCaseTestSuite) TearDownTest() {
	timeNow = time.Now
}

func (s *AuctionUseCaseTestSuite) allowTransactions() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
}

func (s *AuctionUseCaseTestSuite) activeAuction() *auction.Auction {
	return &auction.Auction{
		Id:            "auction-1",
		SellerId:      "seller-1",
		SellerEmail:   "seller@kiit.ac.in",
		Title:         "calculus textbook",
		StartingPrice: 100,
		CurrentPrice:  100,
		StartTime:     testNow.Add(-time.Hour),
		EndTime:       testNow.Add(time.Hour),
		Status:        auction.StatusActive,
	}
}

func (s *AuctionUseCaseTestSuite) TestCreateDefaultsToSevenDays() {
	seller := &user.User{Id: "seller-1", Email: "seller@kiit.ac.in"}
	s.userUC.On("GetByEmail", mock.Anything, domain.Email("seller@kiit.ac.in")).Return(seller, nil)
	s.userUC.On("IncrementTotalAuctions", mock.Anything, domain.UserId("seller-1")).Return(nil)
	s.auctionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	a, err := s.im.Create(ctx.Background(), &auction.CreateParams{
		SellerEmail:   "seller@kiit.ac.in",
		Title:         "calculus textbook",
		Category:      "books",
		StartingPrice: 100,
	})
	s.NoError(err)
	s.Equal(auction.StatusActive, a.Status)
	s.Equal(float64(100), a.CurrentPrice)
	s.Equal(testNow.AddDate(0, 0, 7), a.EndTime)
	s.Equal(domain.UserId("seller-1"), a.SellerId)
	s.NotEmpty(a.Id)
}

func (s *AuctionUseCaseTestSuite) TestCreateQuickAuctionEndsInOneDay() {
	seller := &user.User{Id: "seller-1", Email: "seller@kiit.ac.in"}
	s.userUC.On("GetByEmail", mock.Anything, mock.Anything).Return(seller, nil)
	s.userUC.On("IncrementTotalAuctions", mock.Anything, mock.Anything).Return(nil)
	s.auctionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	a, err := s.im.Create(ctx.Background(), &auction.CreateParams{
		SellerEmail:    "seller@kiit.ac.in",
		Title:          "cycle",
		Category:       "vehicles",
		StartingPrice:  500,
		IsQuickAuction: true,
		DurationDays:   3, // quick flag wins over explicit duration
	})
	s.NoError(err)
	s.Equal(testNow.Add(24*time.Hour), a.EndTime)
}

func (s *AuctionUseCaseTestSuite) TestCreateHonorsDurationDays() {
	seller := &user.User{Id: "seller-1", Email: "seller@kiit.ac.in"}
	s.userUC.On("GetByEmail", mock.Anything, mock.Anything).Return(seller, nil)
	s.userUC.On("IncrementTotalAuctions", mock.Anything, mock.Anything).Return(nil)
	s.auctionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	a, err := s.im.Create(ctx.Background(), &auction.CreateParams{
		SellerEmail:   "seller@kiit.ac.in",
		Title:         "lamp",
		Category:      "hostel",
		StartingPrice: 100,
		DurationDays:  3,
	})
	s.NoError(err)
	s.Equal(testNow.AddDate(0, 0, 3), a.EndTime)
}

func (s *AuctionUseCaseTestSuite) TestCreateRejectsNonPositivePrice() {
	_, err := s.im.Create(ctx.Background(), &auction.CreateParams{
		SellerEmail:   "seller@kiit.ac.in",
		Title:         "freebie",
		Category:      "misc",
		StartingPrice: 0,
	})
	s.ErrorIs(err, auction.ErrInvalidListing)
	s.auctionRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestCreateRejectsUnknownSeller() {
	s.userUC.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := s.im.Create(ctx.Background(), &auction.CreateParams{
		SellerEmail:   "ghost@kiit.ac.in",
		Title:         "chair",
		Category:      "hostel",
		StartingPrice: 100,
	})
	s.ErrorIs(err, auction.ErrInvalidListing)
}

func (s *AuctionUseCaseTestSuite) TestPlaceBidFirstBidAccepted() {
	s.allowTransactions()
	a := s.activeAuction()
	bidder := &user.User{Id: "bidder-1", Email: "bidder@kiit.ac.in"}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.userUC.On("Get", mock.Anything, domain.UserId("bidder-1")).Return(bidder, nil)
	s.bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(nil, domain.ErrNotFound)
	s.bidRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.CurrentPrice != nil && *p.CurrentPrice == 150 && p.Status == nil
	})).Return(nil)

	bid, err := s.im.PlaceBid(ctx.Background(), "auction-1", "bidder-1", 150)
	s.NoError(err)
	s.True(bid.IsWinning)
	s.Equal(float64(150), bid.Amount)
	s.Equal(domain.Email("bidder@kiit.ac.in"), bid.BidderEmail)
	s.bidRepo.AssertNotCalled(s.T(), "SetWinning", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestPlaceBidOutbidsPreviousWinner() {
	s.allowTransactions()
	a := s.activeAuction()
	a.CurrentPrice = 150
	prev := &auction.Bid{Id: "bid-1", AuctionId: "auction-1", BidderId: "bidder-1", Amount: 150, IsWinning: true}
	bidder := &user.User{Id: "bidder-2", Email: "other@kiit.ac.in"}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.userUC.On("Get", mock.Anything, domain.UserId("bidder-2")).Return(bidder, nil)
	s.bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(prev, nil)
	s.bidRepo.On("SetWinning", mock.Anything, domain.BidId("bid-1"), false).Return(nil)
	s.bidRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.Anything).Return(nil)

	bid, err := s.im.PlaceBid(ctx.Background(), "auction-1", "bidder-2", 200)
	s.NoError(err)
	s.True(bid.IsWinning)
	s.bidRepo.AssertCalled(s.T(), "SetWinning", mock.Anything, domain.BidId("bid-1"), false)
}

func (s *AuctionUseCaseTestSuite) TestPlaceBidTooLowLeavesNoWrites() {
	a := s.activeAuction()
	bidder := &user.User{Id: "bidder-1", Email: "bidder@kiit.ac.in"}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.userUC.On("Get", mock.Anything, domain.UserId("bidder-1")).Return(bidder, nil)
	s.bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(nil, domain.ErrNotFound)

	_, err := s.im.PlaceBid(ctx.Background(), "auction-1", "bidder-1", 149)
	tooLow := &auction.BidTooLowError{}
	s.ErrorAs(err, &tooLow)
	s.Equal(float64(150), tooLow.Minimum)
	s.q.AssertNotCalled(s.T(), "RunWithTransaction", mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestPlaceBidOnExpiredAuctionSettlesIt() {
	s.allowTransactions()
	a := s.activeAuction()
	a.EndTime = testNow.Add(-time.Minute)
	highest := &auction.Bid{Id: "bid-1", AuctionId: "auction-1", BidderId: "bidder-1", Amount: 150, IsWinning: true}
	bidder := &user.User{Id: "bidder-2", Email: "other@kiit.ac.in"}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.userUC.On("Get", mock.Anything, domain.UserId("bidder-2")).Return(bidder, nil)
	s.bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(highest, nil)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(highest, nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusCompleted
	})).Return(nil)
	s.userUC.On("IncrementCompletedSales", mock.Anything, domain.UserId("seller-1")).Return(nil)

	_, err := s.im.PlaceBid(ctx.Background(), "auction-1", "bidder-2", 200)
	s.ErrorIs(err, auction.ErrExpired)
	s.auctionRepo.AssertCalled(s.T(), "Patch", mock.Anything, domain.AuctionId("auction-1"), mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestCloseWithWinnerCompletes() {
	s.allowTransactions()
	a := s.activeAuction()
	winner := &auction.Bid{Id: "bid-1", AuctionId: "auction-1", BidderId: "bidder-1", Amount: 250, IsWinning: true}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(winner, nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusCompleted
	})).Return(nil)
	s.userUC.On("IncrementCompletedSales", mock.Anything, domain.UserId("seller-1")).Return(nil)

	res, err := s.im.Close(ctx.Background(), "auction-1")
	s.NoError(err)
	s.Equal(auction.StatusCompleted, res.Status)
	s.userUC.AssertCalled(s.T(), "IncrementCompletedSales", mock.Anything, domain.UserId("seller-1"))
}

func (s *AuctionUseCaseTestSuite) TestCloseWithoutBidsEnds() {
	s.allowTransactions()
	a := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(nil, domain.ErrNotFound)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusEnded
	})).Return(nil)

	res, err := s.im.Close(ctx.Background(), "auction-1")
	s.NoError(err)
	s.Equal(auction.StatusEnded, res.Status)
	s.userUC.AssertNotCalled(s.T(), "IncrementCompletedSales", mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestCloseIsIdempotent() {
	a := s.activeAuction()
	a.Status = auction.StatusCompleted

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)

	res, err := s.im.Close(ctx.Background(), "auction-1")
	s.NoError(err)
	s.Equal(auction.StatusCompleted, res.Status)
	s.auctionRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
	s.userUC.AssertNotCalled(s.T(), "IncrementCompletedSales", mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestCloseRepairsStaleWinningFlag() {
	s.allowTransactions()
	a := s.activeAuction()
	highest := &auction.Bid{Id: "bid-2", AuctionId: "auction-1", BidderId: "bidder-2", Amount: 300, IsWinning: false}
	flagged := &auction.Bid{Id: "bid-1", AuctionId: "auction-1", BidderId: "bidder-1", Amount: 200, IsWinning: true}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(highest, nil)
	s.bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(flagged, nil)
	s.bidRepo.On("SetWinning", mock.Anything, domain.BidId("bid-1"), false).Return(nil)
	s.bidRepo.On("SetWinning", mock.Anything, domain.BidId("bid-2"), true).Return(nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.Anything).Return(nil)
	s.userUC.On("IncrementCompletedSales", mock.Anything, mock.Anything).Return(nil)

	_, err := s.im.Close(ctx.Background(), "auction-1")
	s.NoError(err)
	s.bidRepo.AssertCalled(s.T(), "SetWinning", mock.Anything, domain.BidId("bid-2"), true)
	s.bidRepo.AssertCalled(s.T(), "SetWinning", mock.Anything, domain.BidId("bid-1"), false)
}

func (s *AuctionUseCaseTestSuite) TestCancelRequiresSeller() {
	a := s.activeAuction()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)

	_, err := s.im.Cancel(ctx.Background(), "auction-1", "bidder-1")
	s.ErrorIs(err, domain.ErrNotAuthorized)
}

func (s *AuctionUseCaseTestSuite) TestCancelRequiresActiveStatus() {
	a := s.activeAuction()
	a.Status = auction.StatusEnded
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)

	_, err := s.im.Cancel(ctx.Background(), "auction-1", "seller-1")
	s.ErrorIs(err, domain.ErrInvalidState)
}

func (s *AuctionUseCaseTestSuite) TestCancelBySeller() {
	a := s.activeAuction()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusCancelled
	})).Return(nil)

	res, err := s.im.Cancel(ctx.Background(), "auction-1", "seller-1")
	s.NoError(err)
	s.Equal(auction.StatusCancelled, res.Status)
}

func (s *AuctionUseCaseTestSuite) TestDeleteCascadesBids() {
	s.allowTransactions()
	a := s.activeAuction()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.bidRepo.On("RemoveAll", mock.Anything, mock.Anything).Return(nil)
	s.auctionRepo.On("Remove", mock.Anything, domain.AuctionId("auction-1")).Return(nil)

	err := s.im.Delete(ctx.Background(), "auction-1")
	s.NoError(err)
	s.bidRepo.AssertCalled(s.T(), "RemoveAll", mock.Anything, mock.Anything)
}

func (s *AuctionUseCaseTestSuite) TestCloseExpiredIsolatesFailures() {
	s.allowTransactions()
	good := s.activeAuction()
	bad := s.activeAuction()
	bad.Id = "auction-2"

	s.auctionRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Auction{good, bad}, nil)
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(good, nil)
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-2")).Return(nil, domain.ErrInternalServerError)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(nil, domain.ErrNotFound)
	s.auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.Anything).Return(nil)

	closed, err := s.im.CloseExpired(ctx.Background())
	s.NoError(err)
	s.Equal(1, closed)
}

func (s *AuctionUseCaseTestSuite) TestGetStats() {
	a := s.activeAuction()
	a.CurrentPrice = 250
	top := &auction.Bid{Id: "bid-9", AuctionId: "auction-1", Amount: 250}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(a, nil)
	s.bidRepo.On("Count", mock.Anything, mock.Anything).Return(3, nil)
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("auction-1")).Return(top, nil)

	stats, err := s.im.GetStats(ctx.Background(), "auction-1")
	s.NoError(err)
	s.Equal(3, stats.TotalBids)
	s.Equal(float64(250), stats.HighestBid)
	s.Equal(float64(250), stats.CurrentPrice)
}

func TestAuctionUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionUseCaseTestSuite))
}

// TestConcurrentBidsSerialized races two bidders at the same amount. The
// per-auction lock must admit exactly one and reject the other against
// the advanced price.
func TestConcurrentBidsSerialized(t *testing.T) {
	req := require.New(t)
	_ctx := ctx.Background()

	var mu sync.Mutex
	currentPrice := float64(100)
	var winning *auction.Bid

	auctionRepo := &mAuction.Repo{}
	bidRepo := &mAuction.BidRepo{}
	userUC := &mUser.Usecase{}
	q := &mQuery.Mongo{}

	auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("auction-1")).Return(func(ctx.Ctx, domain.AuctionId) *auction.Auction {
		mu.Lock()
		defer mu.Unlock()
		return &auction.Auction{
			Id:            "auction-1",
			SellerId:      "seller-1",
			StartingPrice: 100,
			CurrentPrice:  currentPrice,
			EndTime:       time.Now().Add(time.Hour),
			Status:        auction.StatusActive,
		}
	}, nil)
	auctionRepo.On("Patch", mock.Anything, domain.AuctionId("auction-1"), mock.Anything).Return(func(c ctx.Ctx, id domain.AuctionId, p *auction.Patchable) error {
		mu.Lock()
		defer mu.Unlock()
		if p.CurrentPrice != nil {
			currentPrice = *p.CurrentPrice
		}
		return nil
	})
	userUC.On("Get", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, id domain.UserId) *user.User {
		return &user.User{Id: id, Email: domain.Email(id.String() + "@kiit.ac.in")}
	}, nil)
	bidRepo.On("FindWinning", mock.Anything, domain.AuctionId("auction-1")).Return(func(ctx.Ctx, domain.AuctionId) *auction.Bid {
		mu.Lock()
		defer mu.Unlock()
		return winning
	}, func(ctx.Ctx, domain.AuctionId) error {
		mu.Lock()
		defer mu.Unlock()
		if winning == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	bidRepo.On("SetWinning", mock.Anything, mock.Anything, false).Return(nil)
	bidRepo.On("Insert", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, b *auction.Bid) error {
		mu.Lock()
		defer mu.Unlock()
		winning = b
		return nil
	})
	q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})

	im := NewAuctionUseCase(&AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		BidRepo:     bidRepo,
		UserUC:      userUC,
		Query:       q,
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, bidder := range []domain.UserId{"bidder-1", "bidder-2"} {
		i, bidder := i, bidder
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = im.PlaceBid(_ctx, "auction-1", bidder, 150)
		}()
	}
	wg.Wait()

	accepted, rejected := 0, 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		tooLow := &auction.BidTooLowError{}
		req.ErrorAs(err, &tooLow)
		req.Equal(float64(200), tooLow.Minimum)
		rejected++
	}
	req.Equal(1, accepted)
	req.Equal(1, rejected)
	req.Equal(float64(150), currentPrice)
}
