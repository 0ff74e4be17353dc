package domain

// Table is a mongo collection name
type Table string

const (
	TableUsers    Table = "users"
	TableAuctions Table = "auctions"
	TableBids     Table = "bids"
)
