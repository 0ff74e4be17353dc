package usecase

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/keylock"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/base/metrics"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
	"github.com/campus-auction/goapi/domain/user"
	"github.com/campus-auction/goapi/service/query"
)

const (
	defaultDurationDays = 7
	quickDuration       = 24 * time.Hour
	defaultMinIncrement = 50

	closeWorkers = 4
)

// for test to overwrite
var timeNow = time.Now

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	UserUC      user.Usecase
	Query       query.Mongo

	// MinIncrement is the smallest amount a bid must exceed the current
	// price by. Zero falls back to the default.
	MinIncrement float64
}

type impl struct {
	auctionRepo  auction.Repo
	bidRepo      auction.BidRepo
	userUC       user.Usecase
	q            query.Mongo
	minIncrement float64
	locks        *keylock.KeyLock
	pool         *goroutines.Pool
	met          metrics.Service
}

func NewAuctionUseCase(cfg *AuctionUseCaseCfg) auction.UseCase {
	minIncrement := cfg.MinIncrement
	if minIncrement <= 0 {
		minIncrement = defaultMinIncrement
	}
	return &impl{
		auctionRepo:  cfg.AuctionRepo,
		bidRepo:      cfg.BidRepo,
		userUC:       cfg.UserUC,
		q:            cfg.Query,
		minIncrement: minIncrement,
		locks:        keylock.New(),
		pool:         goroutines.NewPool(closeWorkers),
		met:          metrics.New("auction"),
	}
}

func (im *impl) Create(context ctx.Ctx, params *auction.CreateParams) (*auction.Auction, error) {
	if params.StartingPrice <= 0 {
		return nil, xerrors.Errorf("starting price must be positive: %w", auction.ErrInvalidListing)
	}

	seller, err := im.userUC.GetByEmail(context, params.SellerEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, xerrors.Errorf("unknown seller %s: %w", params.SellerEmail, auction.ErrInvalidListing)
	} else if err != nil {
		context.WithFields(log.Fields{
			"err":   err,
			"email": params.SellerEmail,
		}).Error("userUC.GetByEmail failed")
		return nil, err
	}

	now := timeNow().UTC()
	endTime := now.AddDate(0, 0, defaultDurationDays)
	if params.IsQuickAuction {
		endTime = now.Add(quickDuration)
	} else if params.DurationDays > 0 {
		endTime = now.AddDate(0, 0, params.DurationDays)
	}

	a := &auction.Auction{
		Id:               domain.AuctionId(uuid.New().String()),
		SellerId:         seller.Id,
		SellerEmail:      seller.Email,
		Title:            params.Title,
		Description:      params.Description,
		Category:         params.Category,
		Condition:        params.Condition,
		StartingPrice:    params.StartingPrice,
		CurrentPrice:     params.StartingPrice,
		HostelPreference: params.HostelPreference,
		IsQuickAuction:   params.IsQuickAuction,
		StartTime:        now,
		EndTime:          endTime,
		Status:           auction.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := im.auctionRepo.Insert(context, a); err != nil {
		context.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("auctionRepo.Insert failed")
		return nil, err
	}

	// reputation counter is advisory, a failed bump must not fail the listing
	if err := im.userUC.IncrementTotalAuctions(context, seller.Id); err != nil {
		context.WithFields(log.Fields{
			"err":      err,
			"sellerId": seller.Id,
		}).Warn("userUC.IncrementTotalAuctions failed")
	}

	im.met.BumpSum("create", 1)
	return a, nil
}

func (im *impl) Get(context ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(context, id)
}

func (im *impl) FindAll(context ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.auctionRepo.FindAll(context, opts...)
}

func (im *impl) GetStats(context ctx.Ctx, id domain.AuctionId) (*auction.Stats, error) {
	a, err := im.auctionRepo.FindOne(context, id)
	if err != nil {
		return nil, err
	}

	cnt, err := im.bidRepo.Count(context, auction.WithAuctionId(id))
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("bidRepo.Count failed")
		return nil, err
	}

	highest := float64(0)
	top, err := im.bidRepo.FindHighest(context, id)
	if err == nil {
		highest = top.Amount
	} else if !errors.Is(err, domain.ErrNotFound) {
		context.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("bidRepo.FindHighest failed")
		return nil, err
	}

	return &auction.Stats{
		Title:        a.Title,
		CurrentPrice: a.CurrentPrice,
		TotalBids:    cnt,
		HighestBid:   highest,
		Status:       a.Status,
	}, nil
}

// PlaceBid serializes bids on the same auction through a per-id lock so
// each candidate is evaluated against a fresh read. The accepted write is
// transactional: previous flag cleared, bid inserted, price advanced.
func (im *impl) PlaceBid(context ctx.Ctx, id domain.AuctionId, bidderId domain.UserId, amount float64) (*auction.Bid, error) {
	var res *auction.Bid
	err := im.locks.WithLock(id.String(), func() error {
		a, err := im.auctionRepo.FindOne(context, id)
		if err != nil {
			return err
		}

		bidder, err := im.userUC.Get(context, bidderId)
		if err != nil {
			return err
		}

		prev, err := im.bidRepo.FindWinning(context, id)
		if errors.Is(err, domain.ErrNotFound) {
			prev = nil
		} else if err != nil {
			return err
		}

		now := timeNow().UTC()
		acc, err := evaluateBid(a, prev, bidderId, amount, im.minIncrement, now)
		if errors.Is(err, auction.ErrExpired) {
			// the sweeper has not caught up, settle it right here
			if _, closeErr := im.closeLocked(context, a); closeErr != nil {
				context.WithFields(log.Fields{
					"err": closeErr,
					"id":  id,
				}).Error("closeLocked failed")
			}
			im.met.BumpSum("bid.reject", 1, "reason", "expired")
			return err
		} else if err != nil {
			im.met.BumpSum("bid.reject", 1)
			return err
		}

		bid := &auction.Bid{
			Id:          domain.BidId(uuid.New().String()),
			AuctionId:   id,
			BidderId:    bidderId,
			BidderEmail: bidder.Email,
			Amount:      amount,
			IsWinning:   true,
			BidTime:     now,
		}

		err = im.q.RunWithTransaction(context, func(txCtx ctx.Ctx) error {
			if acc.PrevWinningBidId != nil {
				if err := im.bidRepo.SetWinning(txCtx, *acc.PrevWinningBidId, false); err != nil {
					return err
				}
			}
			if err := im.bidRepo.Insert(txCtx, bid); err != nil {
				return err
			}
			return im.auctionRepo.Patch(txCtx, id, &auction.Patchable{
				CurrentPrice: &acc.NewCurrentPrice,
				UpdatedAt:    &now,
			})
		})
		if err != nil {
			context.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("bid transaction failed")
			return err
		}

		im.met.BumpSum("bid.accept", 1)
		res = bid
		return nil
	})
	return res, err
}

func (im *impl) GetWinningBid(context ctx.Ctx, id domain.AuctionId) (*auction.Bid, error) {
	if _, err := im.auctionRepo.FindOne(context, id); err != nil {
		return nil, err
	}
	return im.bidRepo.FindWinning(context, id)
}

func (im *impl) GetBids(context ctx.Ctx, id domain.AuctionId) ([]*auction.Bid, error) {
	if _, err := im.auctionRepo.FindOne(context, id); err != nil {
		return nil, err
	}
	return im.bidRepo.FindAll(context, auction.WithAuctionId(id))
}

func (im *impl) GetBidsByBidder(context ctx.Ctx, bidderId domain.UserId) ([]*auction.Bid, error) {
	return im.bidRepo.FindAll(context, auction.WithBidderId(bidderId), auction.WithBidSort("-bidTime"))
}

func (im *impl) GetWonAuctions(context ctx.Ctx, bidderId domain.UserId) ([]*auction.Auction, error) {
	bids, err := im.bidRepo.FindAll(context, auction.WithBidderId(bidderId), auction.WithWinning(true))
	if err != nil {
		return nil, err
	}

	res := []*auction.Auction{}
	for _, b := range bids {
		a, err := im.auctionRepo.FindOne(context, b.AuctionId)
		if errors.Is(err, domain.ErrAuctionNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		if a.Status == auction.StatusCompleted {
			res = append(res, a)
		}
	}
	return res, nil
}

func (im *impl) Close(context ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	var res *auction.Auction
	err := im.locks.WithLock(id.String(), func() error {
		a, err := im.auctionRepo.FindOne(context, id)
		if err != nil {
			return err
		}
		res, err = im.closeLocked(context, a)
		return err
	})
	return res, err
}

// closeLocked settles an auction. Caller must hold the auction's key lock.
// Closing anything but an ACTIVE auction is a no-op, which makes the
// operation safe to retry and safe to race between sweeper and bidders.
// The winner is recomputed from the highest amount on record rather than
// trusting the winning flag, so a stale flag cannot crown the wrong bid.
func (im *impl) closeLocked(context ctx.Ctx, a *auction.Auction) (*auction.Auction, error) {
	if a.Status != auction.StatusActive {
		return a, nil
	}

	winner, err := im.bidRepo.FindHighest(context, a.Id)
	if errors.Is(err, domain.ErrNotFound) {
		winner = nil
	} else if err != nil {
		return nil, err
	}

	finalStatus := auction.StatusEnded
	if winner != nil {
		if !a.Status.CanTransitionTo(auction.StatusEnded) || !auction.StatusEnded.CanTransitionTo(auction.StatusCompleted) {
			return nil, domain.ErrInvalidState
		}
		finalStatus = auction.StatusCompleted
	} else if !a.Status.CanTransitionTo(finalStatus) {
		return nil, domain.ErrInvalidState
	}

	now := timeNow().UTC()
	err = im.q.RunWithTransaction(context, func(txCtx ctx.Ctx) error {
		if winner != nil && !winner.IsWinning {
			// repair a flag left stale by a partial failure
			flagged, err := im.bidRepo.FindWinning(txCtx, a.Id)
			if err == nil {
				if err := im.bidRepo.SetWinning(txCtx, flagged.Id, false); err != nil {
					return err
				}
			} else if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if err := im.bidRepo.SetWinning(txCtx, winner.Id, true); err != nil {
				return err
			}
		}
		return im.auctionRepo.Patch(txCtx, a.Id, &auction.Patchable{
			Status:    &finalStatus,
			UpdatedAt: &now,
		})
	})
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("close transaction failed")
		return nil, err
	}

	a.Status = finalStatus
	a.UpdatedAt = now

	if finalStatus == auction.StatusCompleted {
		if err := im.userUC.IncrementCompletedSales(context, a.SellerId); err != nil {
			context.WithFields(log.Fields{
				"err":      err,
				"sellerId": a.SellerId,
			}).Warn("userUC.IncrementCompletedSales failed")
		}
	}

	im.met.BumpSum("close", 1, "status", string(finalStatus))
	return a, nil
}

func (im *impl) CloseExpired(context ctx.Ctx) (int, error) {
	expired, err := im.auctionRepo.FindAll(context,
		auction.WithStatus(auction.StatusActive),
		auction.WithEndTimeLT(timeNow().UTC()),
	)
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
		}).Error("auctionRepo.FindAll failed")
		return 0, err
	}

	var closed int32
	wg := sync.WaitGroup{}
	for _, a := range expired {
		a := a
		wg.Add(1)
		if err := im.pool.Schedule(func() {
			defer wg.Done()
			if _, err := im.Close(context, a.Id); err != nil {
				context.WithFields(log.Fields{
					"err": err,
					"id":  a.Id,
				}).Error("im.Close failed")
				im.met.BumpSum("sweep.err", 1)
				return
			}
			atomic.AddInt32(&closed, 1)
		}); err != nil {
			wg.Done()
			context.WithFields(log.Fields{
				"err": err,
				"id":  a.Id,
			}).Error("pool.Schedule failed")
		}
	}
	wg.Wait()

	return int(atomic.LoadInt32(&closed)), nil
}

func (im *impl) Cancel(context ctx.Ctx, id domain.AuctionId, requesterId domain.UserId) (*auction.Auction, error) {
	var res *auction.Auction
	err := im.locks.WithLock(id.String(), func() error {
		a, err := im.auctionRepo.FindOne(context, id)
		if err != nil {
			return err
		}

		if !a.SellerId.Equals(requesterId) {
			return domain.ErrNotAuthorized
		}

		if !a.Status.CanTransitionTo(auction.StatusCancelled) {
			return domain.ErrInvalidState
		}

		now := timeNow().UTC()
		status := auction.StatusCancelled
		if err := im.auctionRepo.Patch(context, id, &auction.Patchable{
			Status:    &status,
			UpdatedAt: &now,
		}); err != nil {
			return err
		}

		a.Status = status
		a.UpdatedAt = now
		im.met.BumpSum("cancel", 1)
		res = a
		return nil
	})
	return res, err
}

func (im *impl) Delete(context ctx.Ctx, id domain.AuctionId) error {
	return im.locks.WithLock(id.String(), func() error {
		if _, err := im.auctionRepo.FindOne(context, id); err != nil {
			return err
		}

		return im.q.RunWithTransaction(context, func(txCtx ctx.Ctx) error {
			if err := im.bidRepo.RemoveAll(txCtx, auction.WithAuctionId(id)); err != nil {
				return err
			}
			return im.auctionRepo.Remove(txCtx, id)
		})
	})
}
