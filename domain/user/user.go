package user

import (
	"time"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/domain"
)

// User is a registered community member stored in database
type User struct {
	Id       domain.UserId `json:"id" bson:"id"`
	Name     string        `json:"name" bson:"name"`
	Password string        `json:"-" bson:"password"`
	Email    domain.Email  `json:"email" bson:"email"`
	Phone    string        `json:"phone" bson:"phone"`
	Hostel   string        `json:"hostel" bson:"hostel"`
	Batch    string        `json:"batch" bson:"batch"`
	Branch   string        `json:"branch" bson:"branch"`

	// derived reputation fields, owned by the usecase
	TrustScore     float64 `json:"trustScore" bson:"trustScore"`
	TotalAuctions  int32   `json:"totalAuctions" bson:"totalAuctions"`
	CompletedSales int32   `json:"completedSales" bson:"completedSales"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
}

// Counters is the pair trustScore derives from. Read atomically, never
// assembled from two independent reads.
type Counters struct {
	TotalAuctions  int32 `bson:"totalAuctions"`
	CompletedSales int32 `bson:"completedSales"`
}

// TrustScore is completed sales over attempted listings, in percent
func (c Counters) TrustScore() float64 {
	if c.TotalAuctions <= 0 {
		return 0
	}
	return float64(c.CompletedSales) / float64(c.TotalAuctions) * 100
}

// RegisterParams is a registration submission
type RegisterParams struct {
	Name     string       `json:"name" validate:"required"`
	Password string       `json:"password" validate:"required,min=6"`
	Email    domain.Email `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required"`
	Hostel   string       `json:"hostel" validate:"required"`
	Batch    string       `json:"batch" validate:"required"`
	Branch   string       `json:"branch" validate:"required"`
}

// Updater to update profile fields
type Updater struct {
	Name   *string `json:"name" bson:"name,omitempty"`
	Phone  *string `json:"phone" bson:"phone,omitempty"`
	Hostel *string `json:"hostel" bson:"hostel,omitempty"`
	Batch  *string `json:"batch" bson:"batch,omitempty"`
	Branch *string `json:"branch" bson:"branch,omitempty"`
}

type FindAllOptions struct {
	Hostel *string
	Offset *int
	Limit  *int
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

func WithHostel(hostel string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Hostel = &hostel
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

// Repo is the user record store
type Repo interface {
	Insert(ctx ctx.Ctx, u *User) error
	FindOne(ctx ctx.Ctx, id domain.UserId) (*User, error)
	FindOneByEmail(ctx ctx.Ctx, email domain.Email) (*User, error)
	FindOneByPhone(ctx ctx.Ctx, phone string) (*User, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*User, error)
	Update(ctx ctx.Ctx, id domain.UserId, updater *Updater) error
	UpdatePassword(ctx ctx.Ctx, id domain.UserId, hashed string) error
	// IncrementCounter atomically bumps one reputation counter and returns
	// the fresh pair from the same write
	IncrementCounter(ctx ctx.Ctx, id domain.UserId, field string, delta int32) (*Counters, error)
	SetTrustScore(ctx ctx.Ctx, id domain.UserId, score float64) error
}

// Usecase is the user collaborator surface the auction engine consumes,
// plus the registration/profile operations of the API
type Usecase interface {
	Register(ctx ctx.Ctx, params *RegisterParams) (*User, error)
	Login(ctx ctx.Ctx, email domain.Email, password string) (*User, error)
	Get(ctx ctx.Ctx, id domain.UserId) (*User, error)
	GetByEmail(ctx ctx.Ctx, email domain.Email) (*User, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*User, error)
	Update(ctx ctx.Ctx, id domain.UserId, updater *Updater) (*User, error)
	ChangePassword(ctx ctx.Ctx, id domain.UserId, oldPassword, newPassword string) error

	IncrementTotalAuctions(ctx ctx.Ctx, id domain.UserId) error
	// IncrementCompletedSales also recomputes and persists the trust score
	IncrementCompletedSales(ctx ctx.Ctx, id domain.UserId) error
}
