package domain

// Product is a catalog item. ID is assigned by the store and never changes.
type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"nome"`
	Description string  `db:"description" json:"descricao"`
	Price       float64 `db:"price" json:"preco"`
}

// ProductInput carries the mutable product fields as received from a client.
// Price is a pointer so an absent value can be told apart from a zero one.
type ProductInput struct {
	Name        string   `json:"nome"`
	Description string   `json:"descricao"`
	Price       *float64 `json:"preco"`
}
