package internal

// BookRecord is one row of the exported books table. Values are kept as
// the raw cell text; parsing happens during transformation so a
// malformed cell degrades to a documented fallback instead of killing
// the row.
type BookRecord struct {
	Code        string
	Title       string
	Category    string
	Description string
	RRP         string
	CostPrice   string
	Stock       string
	AuthorID    string
	Cover       string

	FirstOrderDate string
	LastSaleDate   string
	LastUpdate     string
	StocktakeDate  string
}

// AuthorRecord is one row of the exported authors table.
type AuthorRecord struct {
	ID        string
	FirstName string
	LastName  string
}

// SkipRecord captures a book row excluded from the products output.
type SkipRecord struct {
	Code   string
	Title  string
	Reason string
}

// ConvertStats summarises one conversion run.
type ConvertStats struct {
	Written int
	Skipped int
}
