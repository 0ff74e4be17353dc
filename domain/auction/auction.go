package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/domain"
)

var (
	// ErrInvalidListing occurs when a listing has a non-positive starting
	// price or an unresolvable seller
	ErrInvalidListing = errors.New("invalid listing")
	// ErrNotActive occurs when bidding on an auction that is not ACTIVE
	ErrNotActive = errors.New("auction is not active")
	// ErrExpired occurs when bidding on an auction whose end time passed
	ErrExpired = errors.New("auction has ended")
	// ErrSelfBid occurs when a seller bids on their own auction
	ErrSelfBid = errors.New("sellers cannot bid on their own auctions")
)

// BidTooLowError rejects a bid below currentPrice + minimum increment.
// It carries the minimum acceptable amount for the caller.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be at least %.2f", e.Minimum)
}

// Auction is a timed listing accepting competitive bids until its end time
type Auction struct {
	Id               domain.AuctionId `json:"id" bson:"id"`
	SellerId         domain.UserId    `json:"sellerId" bson:"sellerId"`
	SellerEmail      domain.Email     `json:"sellerEmail" bson:"sellerEmail"`
	Title            string           `json:"title" bson:"title"`
	Description      string           `json:"description" bson:"description"`
	Category         string           `json:"category" bson:"category"`
	Condition        string           `json:"condition" bson:"condition"`
	StartingPrice    float64          `json:"startingPrice" bson:"startingPrice"`
	CurrentPrice     float64          `json:"currentPrice" bson:"currentPrice"`
	HostelPreference string           `json:"hostelPreference" bson:"hostelPreference"`
	IsQuickAuction   bool             `json:"isQuickAuction" bson:"isQuickAuction"`
	StartTime        time.Time        `json:"startTime" bson:"startTime"`
	EndTime          time.Time        `json:"endTime" bson:"endTime"`
	Status           Status           `json:"status" bson:"status"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// CreateParams is a listing submission. End time is derived, never supplied.
type CreateParams struct {
	SellerEmail      domain.Email `json:"sellerEmail" validate:"required,email"`
	Title            string       `json:"title" validate:"required"`
	Description      string       `json:"description"`
	Category         string       `json:"category" validate:"required"`
	Condition        string       `json:"condition"`
	StartingPrice    float64      `json:"startingPrice" validate:"required"`
	HostelPreference string       `json:"hostelPreference"`
	IsQuickAuction   bool         `json:"isQuickAuction"`
	// DurationDays overrides the default 7 day window when > 0
	DurationDays int `json:"durationDays"`
}

// Patchable carries the only fields the lifecycle manager may mutate
type Patchable struct {
	CurrentPrice *float64   `bson:"currentPrice,omitempty"`
	Status       *Status    `bson:"status,omitempty"`
	UpdatedAt    *time.Time `bson:"updatedAt,omitempty"`
}

// Stats is the aggregate view of an auction's bidding activity
type Stats struct {
	Title        string  `json:"title"`
	CurrentPrice float64 `json:"currentPrice"`
	TotalBids    int     `json:"totalBids"`
	HighestBid   float64 `json:"highestBid"`
	Status       Status  `json:"status"`
}

type FindAllOptions struct {
	SellerId    *domain.UserId
	SellerEmail *domain.Email
	Status      *Status
	Category    *string
	EndTimeLT   *time.Time
	Keyword     *string
	SortBy      *string
	Offset      *int
	Limit       *int
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSellerId(sellerId domain.UserId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SellerId = &sellerId
		return nil
	}
}

func WithSellerEmail(email domain.Email) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		lowered := email.ToLower()
		options.SellerEmail = &lowered
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

// WithKeyword matches title or description, case insensitive
func WithKeyword(keyword string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Keyword = &keyword
		return nil
	}
}

func WithSort(sortBy string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Repo is the durable ledger of auction records
type Repo interface {
	Insert(ctx ctx.Ctx, a *Auction) error
	FindOne(ctx ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Patch(ctx ctx.Ctx, id domain.AuctionId, patchable *Patchable) error
	Remove(ctx ctx.Ctx, id domain.AuctionId) error
}

// UseCase owns auction lifecycle transitions and the bidding discipline
type UseCase interface {
	Create(ctx ctx.Ctx, params *CreateParams) (*Auction, error)
	Get(ctx ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	GetStats(ctx ctx.Ctx, id domain.AuctionId) (*Stats, error)

	// PlaceBid serializes concurrent bids per auction id. On acceptance the
	// previous winning flag is cleared, the bid persisted with winning=true
	// and the current price advanced, atomically.
	PlaceBid(ctx ctx.Ctx, id domain.AuctionId, bidderId domain.UserId, amount float64) (*Bid, error)
	GetWinningBid(ctx ctx.Ctx, id domain.AuctionId) (*Bid, error)
	GetBids(ctx ctx.Ctx, id domain.AuctionId) ([]*Bid, error)
	GetBidsByBidder(ctx ctx.Ctx, bidderId domain.UserId) ([]*Bid, error)
	GetWonAuctions(ctx ctx.Ctx, bidderId domain.UserId) ([]*Auction, error)

	// Close is idempotent; closing a non ACTIVE auction is a no-op
	Close(ctx ctx.Ctx, id domain.AuctionId) (*Auction, error)
	// CloseExpired closes every ACTIVE auction past its end time, isolating
	// per-auction failures. Returns the number of auctions closed.
	CloseExpired(ctx ctx.Ctx) (int, error)
	Cancel(ctx ctx.Ctx, id domain.AuctionId, requesterId domain.UserId) (*Auction, error)
	Delete(ctx ctx.Ctx, id domain.AuctionId) error
}
