package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campus-auction/goapi/base/ctx"
	mAuction "github.com/campus-auction/goapi/domain/auction/mocks"
)

func TestSweeperSettlesOnInterval(t *testing.T) {
	req := require.New(t)

	swept := make(chan struct{}, 16)
	auctionUC := &mAuction.UseCase{}
	auctionUC.On("CloseExpired", mock.Anything).Run(func(mock.Arguments) {
		swept <- struct{}{}
	}).Return(2, nil)

	s := NewSweeper(&SweeperCfg{
		AuctionUC: auctionUC,
		Interval:  10 * time.Millisecond,
	})
	s.Start(ctx.Background())

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		req.FailNow("sweeper never ran")
	}

	s.Stop()
	auctionUC.AssertCalled(t, "CloseExpired", mock.Anything)
}

func TestSweeperStopTerminatesLoop(t *testing.T) {
	req := require.New(t)

	auctionUC := &mAuction.UseCase{}
	auctionUC.On("CloseExpired", mock.Anything).Return(0, nil)

	s := NewSweeper(&SweeperCfg{
		AuctionUC: auctionUC,
		Interval:  5 * time.Millisecond,
	})
	s.Start(ctx.Background())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		req.FailNow("sweeper did not stop")
	}
}
