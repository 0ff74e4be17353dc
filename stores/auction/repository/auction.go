package repository

import (
	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/database/mongoclient"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
	"github.com/campus-auction/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAllOptionsFunc) (bson.M, string, int, int, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, "", 0, 0, err
	}
	qry := bson.M{}

	if options.SellerId != nil {
		qry["sellerId"] = *options.SellerId
	}

	if options.SellerEmail != nil {
		qry["sellerEmail"] = *options.SellerEmail
	}

	if options.Status != nil {
		qry["status"] = *options.Status
	}

	if options.Category != nil {
		qry["category"] = *options.Category
	}

	if options.EndTimeLT != nil {
		qry["endTime"] = bson.M{"$lt": *options.EndTimeLT}
	}

	if options.Keyword != nil {
		pattern := primitive.Regex{Pattern: *options.Keyword, Options: "i"}
		qry["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
		}
	}

	sort := "-createdAt"
	if options.SortBy != nil {
		sort = *options.SortBy
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	return qry, sort, offset, limit, nil
}

func (im *auctionRepoImpl) Insert(ctx ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"auction": *a,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	res := auction.Auction{}
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"id": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *auctionRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	qry, sort, offset, limit, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*auction.Auction{}
	err = im.q.Search(ctx, domain.TableAuctions, offset, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionRepoImpl) Count(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	qry, _, _, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableAuctions, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *auctionRepoImpl) Patch(ctx ctx.Ctx, id domain.AuctionId, patchable *auction.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": *patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableAuctions, bson.M{"id": id}, updater)
	if err == query.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"id":      id,
			"updater": updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *auctionRepoImpl) Remove(ctx ctx.Ctx, id domain.AuctionId) error {
	err := im.q.Remove(ctx, domain.TableAuctions, bson.M{"id": id})
	if err == query.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}
