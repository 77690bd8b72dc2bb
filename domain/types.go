// Package domain defines the core storefront types and interfaces.
package domain

// Product is a catalog item sold by the shop.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Material    string   `json:"material"`
	Color       string   `json:"color"`
	InStock     int      `json:"inStock"`
	Category    string   `json:"category"`
	IsNew       bool     `json:"isNew"`
	IsPopular   bool     `json:"isPopular"`
	IsPromotion bool     `json:"isPromotion"`
	Reviews     []Review `json:"reviews"`
}

// Review is a customer review attached to a product. Reviews are
// append-only: nothing ever edits or removes one.
type Review struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

// CartItem is one cart line: a product reference plus a quantity.
// The cart holds at most one line per product.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order statuses, in the order an order normally moves through them.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
)

// Delivery methods.
const (
	DeliveryCarrier = "carrier"
	DeliveryPickup  = "pickup"
)

// Carrier delivery options.
const (
	CarrierBranch  = "branch"
	CarrierLocker  = "locker"
	CarrierCourier = "courier"
)

// Payment methods.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// RecipientInfo identifies somebody other than the buyer who will
// receive the order.
type RecipientInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// CustomerInfo is the buyer contact block captured at checkout.
type CustomerInfo struct {
	FirstName          string         `json:"firstName"`
	LastName           string         `json:"lastName"`
	Phone              string         `json:"phone"`
	Address            string         `json:"address"`
	DifferentRecipient bool           `json:"isDifferentRecipient"`
	Recipient          *RecipientInfo `json:"recipientInfo,omitempty"`
}

// DeliveryInfo describes how the order should reach the customer.
// Carrier deliveries fill CarrierOption, City and Branch; pickups fill
// Location and Contact.
type DeliveryInfo struct {
	Method        string `json:"method"`
	CarrierOption string `json:"carrierOption,omitempty"`
	City          string `json:"city,omitempty"`
	Branch        string `json:"branch,omitempty"`
	Location      string `json:"pickupLocation,omitempty"`
	Contact       string `json:"pickupContact,omitempty"`
}

// Order is a placed order. Items is a frozen snapshot of the cart at
// checkout time. Everything except Status is immutable once created.
type Order struct {
	ID            string       `json:"id"`
	Items         []CartItem   `json:"items"`
	Customer      CustomerInfo `json:"customerInfo"`
	Delivery      DeliveryInfo `json:"delivery"`
	PaymentMethod string       `json:"paymentMethod"`
	Total         float64      `json:"total"`
	Status        string       `json:"status"`
	Date          string       `json:"date"`
}

// AdminUser is the single administrator account. The password is kept
// only as a bcrypt hash.
type AdminUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// SocialLink is a social-media link shown on the contact page.
type SocialLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StoreData is the whole persisted aggregate. It is always read and
// written as one unit.
type StoreData struct {
	Products    []Product    `json:"products"`
	Cart        []CartItem   `json:"cart"`
	Orders      []Order      `json:"orders"`
	Admin       AdminUser    `json:"admin"`
	SocialMedia []SocialLink `json:"socialMedia"`
}

// Filter allows filtering and sorting catalog listings.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string // "name", "price", "stock"
	Order    string // "asc" or "desc"
}

// Stats are the admin dashboard counters, computed by folding over the
// aggregate at call time.
type Stats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
	TotalProducts int     `json:"totalProducts"`
}

// Info is a small size report over the stored aggregate.
type Info struct {
	ProductsCount    int    `json:"productsCount"`
	OrdersCount      int    `json:"ordersCount"`
	CartItemsCount   int    `json:"cartItemsCount"`
	SocialMediaCount int    `json:"socialMediaCount"`
	LastModified     string `json:"lastModified"`
}
