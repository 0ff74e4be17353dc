package usecase

import (
	"time"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/goroutine"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/base/metrics"
	"github.com/campus-auction/goapi/domain/auction"
)

const defaultSweepInterval = 5 * time.Minute

type SweeperCfg struct {
	AuctionUC auction.UseCase
	Interval  time.Duration
}

// Sweeper periodically settles expired auctions in the background. A bid
// against an expired auction also settles it inline, so the sweeper is a
// backstop for auctions nobody touches.
type Sweeper struct {
	auctionUC auction.UseCase
	interval  time.Duration
	stop      chan struct{}
	done      chan struct{}
	met       metrics.Service
}

func NewSweeper(cfg *SweeperCfg) *Sweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		auctionUC: cfg.AuctionUC,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		met:       metrics.New("sweeper"),
	}
}

func (s *Sweeper) Start(context ctx.Ctx) {
	goroutine.RecoverableGo(func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.sweep(context)
			}
		}
	})
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) sweep(context ctx.Ctx) {
	defer s.met.BumpTime("sweep.time").End()

	closed, err := s.auctionUC.CloseExpired(context)
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
		}).Error("auctionUC.CloseExpired failed")
		return
	}

	if closed > 0 {
		context.WithFields(log.Fields{
			"closed": closed,
		}).Info("settled expired auctions")
		s.met.BumpSum("sweep.closed", float64(closed))
	}
}
