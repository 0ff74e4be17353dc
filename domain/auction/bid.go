package auction

import (
	"time"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/domain"
)

// Bid is a monetary offer against an auction. Immutable once created
// except for the winning flag, which flips when a higher bid lands or
// the auction closes.
type Bid struct {
	Id          domain.BidId     `json:"id" bson:"id"`
	AuctionId   domain.AuctionId `json:"auctionId" bson:"auctionId"`
	BidderId    domain.UserId    `json:"bidderId" bson:"bidderId"`
	BidderEmail domain.Email     `json:"bidderEmail" bson:"bidderEmail"`
	Amount      float64          `json:"amount" bson:"amount"`
	IsWinning   bool             `json:"isWinning" bson:"isWinning"`
	BidTime     time.Time        `json:"bidTime" bson:"bidTime"`
}

type BidFindAllOptions struct {
	AuctionId *domain.AuctionId
	BidderId  *domain.UserId
	IsWinning *bool
	SortBy    *string
}

type BidFindAllOptionsFunc func(*BidFindAllOptions) error

func GetBidFindAllOptions(opts ...BidFindAllOptionsFunc) (BidFindAllOptions, error) {
	res := BidFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithAuctionId(id domain.AuctionId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

func WithBidderId(id domain.UserId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.BidderId = &id
		return nil
	}
}

func WithWinning(isWinning bool) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.IsWinning = &isWinning
		return nil
	}
}

func WithBidSort(sortBy string) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

// BidRepo is the durable ledger of bid records
type BidRepo interface {
	Insert(ctx ctx.Ctx, b *Bid) error
	FindAll(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) ([]*Bid, error)
	Count(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) (int, error)
	// FindWinning returns the currently flagged winning bid, domain.ErrNotFound if none
	FindWinning(ctx ctx.Ctx, auctionId domain.AuctionId) (*Bid, error)
	// FindHighest returns the max-amount bid, domain.ErrNotFound if none.
	// Ground truth when flags are inconsistent after a partial failure.
	FindHighest(ctx ctx.Ctx, auctionId domain.AuctionId) (*Bid, error)
	SetWinning(ctx ctx.Ctx, id domain.BidId, isWinning bool) error
	RemoveAll(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) error
}
