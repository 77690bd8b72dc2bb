// Package seed provides the fixed sample catalog and default records
// used to initialize an empty store.
package seed

import (
	"golang.org/x/crypto/bcrypt"

	"printverse/domain"
)

// Product attribute enumerations offered by the shop.
var (
	Materials  = []string{"PLA", "ABS", "PETG", "TPU"}
	Colors     = []string{"Red", "Blue", "Green", "Yellow", "White", "Black", "Pink", "Purple"}
	Categories = []string{"fantasy", "romantic", "automotive", "led", "animals", "custom"}
)

// Default admin credentials. The password below is the well-known
// initial password; only its bcrypt hash is ever stored.
const (
	DefaultAdminUsername = "PrintVerse2025"
	DefaultAdminPassword = "Sviderskyi100"
)

const placeholderImage = "/api/placeholder/300/300"

// Products returns a fresh copy of the fixed six-item sample catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Dragon Keychain",
			Description: "A finely detailed dragon-shaped keychain, printed in high quality PLA plastic.",
			Price:       150,
			Images:      []string{placeholderImage},
			Material:    "PLA",
			Color:       "Red",
			InStock:     25,
			Category:    "fantasy",
			IsNew:       true,
			IsPopular:   true,
			Reviews: []domain.Review{
				{
					ID:           "1",
					CustomerName: "Oleksandr",
					Rating:       5,
					Comment:      "Wonderful keychain, very well made!",
					Date:         "2024-01-15",
				},
			},
		},
		{
			ID:          "2",
			Name:        "Heart Keychain",
			Description: "A romantic heart-shaped keychain. A perfect gift for a loved one.",
			Price:       100,
			Images:      []string{placeholderImage},
			Material:    "PETG",
			Color:       "Pink",
			InStock:     40,
			Category:    "romantic",
			IsPopular:   true,
			IsPromotion: true,
			Reviews:     []domain.Review{},
		},
		{
			ID:          "3",
			Name:        "Sports Car Keychain",
			Description: "A stylish keychain shaped like a sports car. For true car enthusiasts.",
			Price:       120,
			Images:      []string{placeholderImage},
			Material:    "ABS",
			Color:       "Blue",
			InStock:     15,
			Category:    "automotive",
			IsNew:       true,
			Reviews: []domain.Review{
				{
					ID:           "2",
					CustomerName: "Maria",
					Rating:       4,
					Comment:      "Nice keychain, though a little big.",
					Date:         "2024-01-10",
				},
			},
		},
		{
			ID:          "4",
			Name:        "Star Keychain",
			Description: "A bright star-shaped keychain with LED backlight.",
			Price:       200,
			Images:      []string{placeholderImage},
			Material:    "PLA",
			Color:       "Yellow",
			InStock:     30,
			Category:    "led",
			IsPopular:   true,
			IsPromotion: true,
			Reviews:     []domain.Review{},
		},
		{
			ID:          "5",
			Name:        "Kitten Keychain",
			Description: "A cute kitten-shaped keychain. Perfect for animal lovers.",
			Price:       90,
			Images:      []string{placeholderImage},
			Material:    "PLA",
			Color:       "White",
			InStock:     50,
			Category:    "animals",
			IsPopular:   true,
			Reviews: []domain.Review{
				{
					ID:           "3",
					CustomerName: "Anna",
					Rating:       5,
					Comment:      "Such a cute kitten, my daughter loves it!",
					Date:         "2024-01-12",
				},
			},
		},
		{
			ID:          "6",
			Name:        "Logo Keychain",
			Description: "A personalized keychain with your logo or initials.",
			Price:       180,
			Images:      []string{placeholderImage},
			Material:    "PETG",
			Color:       "Black",
			InStock:     20,
			Category:    "custom",
			IsNew:       true,
			Reviews:     []domain.Review{},
		},
	}
}

// Admin returns the default administrator record with the initial
// password hashed.
func Admin() (domain.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, err
	}
	return domain.AdminUser{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
	}, nil
}

// SocialLinks returns the three default contact-page links.
func SocialLinks() []domain.SocialLink {
	return []domain.SocialLink{
		{ID: "1", Name: "Facebook", URL: "https://facebook.com/printverse"},
		{ID: "2", Name: "Instagram", URL: "https://instagram.com/printverse"},
		{ID: "3", Name: "Telegram", URL: "https://t.me/printverse"},
	}
}

// Data builds a complete default aggregate: sample catalog, empty cart
// and orders, default admin, default social links.
func Data() (domain.StoreData, error) {
	admin, err := Admin()
	if err != nil {
		return domain.StoreData{}, err
	}
	return domain.StoreData{
		Products:    Products(),
		Cart:        []domain.CartItem{},
		Orders:      []domain.Order{},
		Admin:       admin,
		SocialMedia: SocialLinks(),
	}, nil
}
