package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"printverse/domain"
)

func TestProducts(t *testing.T) {
	products := Products()
	require.Len(t, products, 6)

	seen := make(map[string]bool)
	for _, p := range products {
		require.NoError(t, domain.ValidateProduct(p))
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Contains(t, Materials, p.Material)
		assert.Contains(t, Categories, p.Category)
		assert.NotNil(t, p.Reviews)
		for _, r := range p.Reviews {
			assert.NoError(t, domain.ValidateReview(r))
		}
	}
}

func TestProductsReturnsFreshCopies(t *testing.T) {
	a := Products()
	a[0].Name = "mutated"
	a[0].Reviews = append(a[0].Reviews, domain.Review{ID: "x"})

	b := Products()
	assert.Equal(t, "Dragon Keychain", b[0].Name)
	assert.Len(t, b[0].Reviews, 1)
}

func TestAdminHashMatchesDefaultPassword(t *testing.T) {
	admin, err := Admin()
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminUsername, admin.Username)
	assert.NotEqual(t, DefaultAdminPassword, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte(DefaultAdminPassword)))
}

func TestData(t *testing.T) {
	data, err := Data()
	require.NoError(t, err)
	assert.Len(t, data.Products, 6)
	assert.Empty(t, data.Cart)
	assert.Empty(t, data.Orders)
	assert.Len(t, data.SocialMedia, 3)
	assert.NotEmpty(t, data.Admin.PasswordHash)
}
