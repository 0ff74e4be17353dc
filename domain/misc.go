package domain

import "strings"

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// UserId is the opaque id of a registered user
type UserId string

func (id UserId) String() string {
	return string(id)
}

func (id UserId) IsEmpty() bool {
	return len(id) == 0
}

func (id UserId) Equals(other UserId) bool {
	return string(id) == string(other)
}

// AuctionId is the opaque id of an auction listing
type AuctionId string

func (id AuctionId) String() string {
	return string(id)
}

func (id AuctionId) IsEmpty() bool {
	return len(id) == 0
}

// BidId is the opaque id of a bid
type BidId string

func (id BidId) String() string {
	return string(id)
}

// Email is a normalized (lowercased) user email
type Email string

func (e Email) ToLower() Email {
	return Email(strings.ToLower(string(e)))
}

func (e Email) String() string {
	return string(e)
}

// HasDomain reports whether the email belongs to the given domain, e.g. "kiit.ac.in"
func (e Email) HasDomain(domain string) bool {
	return strings.HasSuffix(strings.ToLower(string(e)), "@"+strings.ToLower(domain))
}
