package catalog

// Error message constants for the catalog domain.
const (
	ErrMsgProductNotFound   = "Product not found"
	ErrMsgProductExists     = "Product already exists"
	ErrMsgNameRequired      = "Product name is required"
	ErrMsgPriceNegative     = "Price cannot be negative"
	ErrMsgStockNegative     = "Stock cannot be negative"
	ErrMsgImageRequired     = "Please upload at least one image"
	ErrMsgRatingRange       = "Rating must be 0-5"
	ErrMsgUnknownSort       = "Unknown sort order"
	ErrMsgPriceRangeInvalid = "Minimum price exceeds maximum price"
)
