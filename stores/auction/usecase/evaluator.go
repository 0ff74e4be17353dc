package usecase

import (
	"time"

	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
)

// acceptance is the outcome of a successful evaluation. PrevWinningBidId
// tells the caller which flag to clear; nil when this is the first bid.
type acceptance struct {
	NewCurrentPrice  float64
	PrevWinningBidId *domain.BidId
}

// evaluateBid decides accept/reject for a candidate bid. Pure: no I/O, no
// mutation, deterministic given its inputs. Precondition order is fixed,
// the first failing reason wins.
func evaluateBid(a *auction.Auction, prevWinning *auction.Bid, bidderId domain.UserId, amount float64, minIncrement float64, now time.Time) (*acceptance, error) {
	if a.Status != auction.StatusActive {
		return nil, auction.ErrNotActive
	}

	if !a.EndTime.After(now) {
		return nil, auction.ErrExpired
	}

	if a.SellerId.Equals(bidderId) {
		return nil, auction.ErrSelfBid
	}

	// floor equals starting price until the first accepted bid
	minimum := a.CurrentPrice + minIncrement
	if amount < minimum {
		return nil, &auction.BidTooLowError{Minimum: minimum}
	}

	res := &acceptance{NewCurrentPrice: amount}
	if prevWinning != nil {
		id := prevWinning.Id
		res.PrevWinningBidId = &id
	}
	return res, nil
}
