package repository

import (
	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/database/mongoclient"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/user"
	"github.com/campus-auction/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type userRepoImpl struct {
	q query.Mongo
}

func NewUserRepo(q query.Mongo) user.Repo {
	return &userRepoImpl{q}
}

func (im *userRepoImpl) Insert(ctx ctx.Ctx, u *user.User) error {
	if err := im.q.Insert(ctx, domain.TableUsers, u); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"email": u.Email,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *userRepoImpl) findOne(ctx ctx.Ctx, qry bson.M) (*user.User, error) {
	res := user.User{}
	err := im.q.FindOne(ctx, domain.TableUsers, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrUserNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *userRepoImpl) FindOne(ctx ctx.Ctx, id domain.UserId) (*user.User, error) {
	return im.findOne(ctx, bson.M{"id": id})
}

func (im *userRepoImpl) FindOneByEmail(ctx ctx.Ctx, email domain.Email) (*user.User, error) {
	return im.findOne(ctx, bson.M{"email": email.ToLower()})
}

func (im *userRepoImpl) FindOneByPhone(ctx ctx.Ctx, phone string) (*user.User, error) {
	return im.findOne(ctx, bson.M{"phone": phone})
}

func (im *userRepoImpl) FindAll(ctx ctx.Ctx, opts ...user.FindAllOptionsFunc) ([]*user.User, error) {
	options, err := user.GetFindAllOptions(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("user.GetFindAllOptions")
		return nil, err
	}

	qry := bson.M{}
	if options.Hostel != nil {
		qry["hostel"] = *options.Hostel
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*user.User{}
	err = im.q.Search(ctx, domain.TableUsers, offset, limit, "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *userRepoImpl) Update(ctx ctx.Ctx, id domain.UserId, updater *user.Updater) error {
	update, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"updater": *updater,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableUsers, bson.M{"id": id}, update)
	if err == query.ErrNotFound {
		return domain.ErrUserNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"update": update,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *userRepoImpl) UpdatePassword(ctx ctx.Ctx, id domain.UserId, hashed string) error {
	err := im.q.Patch(ctx, domain.TableUsers, bson.M{"id": id}, bson.M{"password": hashed})
	if err == query.ErrNotFound {
		return domain.ErrUserNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *userRepoImpl) IncrementCounter(ctx ctx.Ctx, id domain.UserId, field string, delta int32) (*user.Counters, error) {
	res := user.User{}
	err := im.q.Increment(ctx, domain.TableUsers, bson.M{"id": id}, &res, field, delta)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"id":    id,
			"field": field,
		}).Error("failed to q.Increment")
		return nil, err
	}

	return &user.Counters{
		TotalAuctions:  res.TotalAuctions,
		CompletedSales: res.CompletedSales,
	}, nil
}

func (im *userRepoImpl) SetTrustScore(ctx ctx.Ctx, id domain.UserId, score float64) error {
	err := im.q.Patch(ctx, domain.TableUsers, bson.M{"id": id}, bson.M{"trustScore": score})
	if err == query.ErrNotFound {
		return domain.ErrUserNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
