package domain

type CartItem struct {
	ID         uint64
	BuyerEmail string
	ProductID  uint64
	Quantity   int
	Product    *Product
}

type WishlistItem struct {
	ID         uint64
	BuyerEmail string
	ProductID  uint64
	Product    *Product
}
