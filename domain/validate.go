package domain

// ValidateProduct checks the fields of a product before it is stored.
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewValidationError("id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", p.Name)
	}
	if p.Price < 0 {
		return NewValidationError("price", "must be non-negative", p.Price)
	}
	if p.InStock < 0 {
		return NewValidationError("inStock", "must be non-negative", p.InStock)
	}
	return nil
}

// ValidateReview checks a review before it is appended to a product.
func ValidateReview(r Review) error {
	if r.CustomerName == "" {
		return NewValidationError("customerName", "cannot be empty", r.CustomerName)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return NewValidationError("rating", "must be between 1 and 5", r.Rating)
	}
	return nil
}

// ValidateSocialLink checks a social link before it is stored.
func ValidateSocialLink(l SocialLink) error {
	if l.Name == "" {
		return NewValidationError("name", "cannot be empty", l.Name)
	}
	if l.URL == "" {
		return NewValidationError("url", "cannot be empty", l.URL)
	}
	return nil
}

// ValidateStatus checks that s is one of the known order statuses.
func ValidateStatus(s string) error {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return nil
	}
	return NewValidationError("status", "must be one of pending, processing, shipped, delivered", s)
}

// ValidateOrder checks an order before it is appended.
func ValidateOrder(o Order) error {
	if o.ID == "" {
		return NewValidationError("id", "cannot be empty", o.ID)
	}
	if len(o.Items) == 0 {
		return NewValidationError("items", "cannot be empty", len(o.Items))
	}
	if o.Total < 0 {
		return NewValidationError("total", "must be non-negative", o.Total)
	}
	return ValidateStatus(o.Status)
}
