package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/xerrors"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/log"
	"github.com/campus-auction/goapi/base/metrics"
	"github.com/campus-auction/goapi/base/validator"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/user"
	"github.com/campus-auction/goapi/service/query"
)

const (
	counterTotalAuctions  = "totalAuctions"
	counterCompletedSales = "completedSales"
)

// for test to overwrite
var timeNow = time.Now

type UserUseCaseCfg struct {
	Repo user.Repo

	// AllowedEmailDomain restricts registration to one campus domain.
	// Empty disables the gate.
	AllowedEmailDomain string
}

type impl struct {
	repo          user.Repo
	allowedDomain string
	met           metrics.Service
}

func NewUserUseCase(cfg *UserUseCaseCfg) user.Usecase {
	return &impl{
		repo:          cfg.Repo,
		allowedDomain: cfg.AllowedEmailDomain,
		met:           metrics.New("user"),
	}
}

func (im *impl) Register(context ctx.Ctx, params *user.RegisterParams) (*user.User, error) {
	email := params.Email.ToLower()
	if !validator.IsValidEmail(email.String()) {
		return nil, xerrors.Errorf("malformed email %s: %w", email, domain.ErrBadParamInput)
	}
	if im.allowedDomain != "" && !validator.IsCampusEmail(email.String(), im.allowedDomain) {
		return nil, xerrors.Errorf("only %s addresses may register: %w", im.allowedDomain, domain.ErrBadParamInput)
	}

	if _, err := im.repo.FindOneByEmail(context, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := im.repo.FindOneByPhone(context, params.Phone); err == nil {
		return nil, domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
		}).Error("bcrypt.GenerateFromPassword failed")
		return nil, err
	}

	u := &user.User{
		Id:        domain.UserId(uuid.New().String()),
		Name:      params.Name,
		Password:  string(hashed),
		Email:     email,
		Phone:     params.Phone,
		Hostel:    params.Hostel,
		Batch:     params.Batch,
		Branch:    params.Branch,
		CreatedAt: timeNow().UTC(),
	}

	err = im.repo.Insert(context, u)
	if errors.Is(err, query.ErrDuplicateKey) {
		// lost the race against a concurrent registration
		return nil, domain.ErrEmailTaken
	} else if err != nil {
		return nil, err
	}

	im.met.BumpSum("register", 1)
	return u, nil
}

func (im *impl) Login(context ctx.Ctx, email domain.Email, password string) (*user.User, error) {
	u, err := im.repo.FindOneByEmail(context, email.ToLower())
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		im.met.BumpSum("login.reject", 1)
		return nil, domain.ErrInvalidCredentials
	}

	im.met.BumpSum("login", 1)
	return u, nil
}

func (im *impl) Get(context ctx.Ctx, id domain.UserId) (*user.User, error) {
	return im.repo.FindOne(context, id)
}

func (im *impl) GetByEmail(context ctx.Ctx, email domain.Email) (*user.User, error) {
	return im.repo.FindOneByEmail(context, email.ToLower())
}

func (im *impl) FindAll(context ctx.Ctx, opts ...user.FindAllOptionsFunc) ([]*user.User, error) {
	return im.repo.FindAll(context, opts...)
}

func (im *impl) Update(context ctx.Ctx, id domain.UserId, updater *user.Updater) (*user.User, error) {
	if err := im.repo.Update(context, id, updater); err != nil {
		return nil, err
	}
	return im.repo.FindOne(context, id)
}

func (im *impl) ChangePassword(context ctx.Ctx, id domain.UserId, oldPassword, newPassword string) error {
	u, err := im.repo.FindOne(context, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		context.WithFields(log.Fields{
			"err": err,
		}).Error("bcrypt.GenerateFromPassword failed")
		return err
	}

	return im.repo.UpdatePassword(context, id, string(hashed))
}

func (im *impl) IncrementTotalAuctions(context ctx.Ctx, id domain.UserId) error {
	if _, err := im.repo.IncrementCounter(context, id, counterTotalAuctions, 1); err != nil {
		return err
	}
	return nil
}

// IncrementCompletedSales bumps the counter and recomputes the trust score
// from the counters returned by the same atomic write, so concurrent
// settlements cannot derive the score from a torn read.
func (im *impl) IncrementCompletedSales(context ctx.Ctx, id domain.UserId) error {
	counters, err := im.repo.IncrementCounter(context, id, counterCompletedSales, 1)
	if err != nil {
		return err
	}

	if err := im.repo.SetTrustScore(context, id, counters.TrustScore()); err != nil {
		context.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("repo.SetTrustScore failed")
		return err
	}

	return nil
}
