package repository

import (
	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
	"github.com/campus-auction/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func (im *bidRepoImpl) makeQuery(opts ...auction.BidFindAllOptionsFunc) (bson.M, string, error) {
	options, err := auction.GetBidFindAllOptions(opts...)
	if err != nil {
		return nil, "", err
	}
	qry := bson.M{}

	if options.AuctionId != nil {
		qry["auctionId"] = *options.AuctionId
	}

	if options.BidderId != nil {
		qry["bidderId"] = *options.BidderId
	}

	if options.IsWinning != nil {
		qry["isWinning"] = *options.IsWinning
	}

	sort := "-amount"
	if options.SortBy != nil {
		sort = *options.SortBy
	}

	return qry, sort, nil
}

func (im *bidRepoImpl) Insert(ctx ctx.Ctx, b *auction.Bid) error {
	if err := im.q.Insert(ctx, domain.TableBids, b); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"bid": *b,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *bidRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) ([]*auction.Bid, error) {
	qry, sort, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*auction.Bid{}
	err = im.q.Search(ctx, domain.TableBids, 0, 0, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *bidRepoImpl) Count(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) (int, error) {
	qry, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableBids, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *bidRepoImpl) FindWinning(ctx ctx.Ctx, auctionId domain.AuctionId) (*auction.Bid, error) {
	res := auction.Bid{}
	err := im.q.FindOne(ctx, domain.TableBids, bson.M{"auctionId": auctionId, "isWinning": true}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *bidRepoImpl) FindHighest(ctx ctx.Ctx, auctionId domain.AuctionId) (*auction.Bid, error) {
	res := []*auction.Bid{}
	err := im.q.Search(ctx, domain.TableBids, 0, 1, "-amount", bson.M{"auctionId": auctionId}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to q.Search")
		return nil, err
	}
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}

	return res[0], nil
}

func (im *bidRepoImpl) SetWinning(ctx ctx.Ctx, id domain.BidId, isWinning bool) error {
	err := im.q.Patch(ctx, domain.TableBids, bson.M{"id": id}, bson.M{"isWinning": isWinning})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *bidRepoImpl) RemoveAll(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) error {
	qry, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return err
	}

	_, err = im.q.RemoveAll(ctx, domain.TableBids, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.RemoveAll failed")
		return err
	}

	return nil
}
