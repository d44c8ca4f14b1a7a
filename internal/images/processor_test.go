package images_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calzado/internal/images"
)

func TestCloudinaryProcess(t *testing.T) {
	processor := images.NewCloudinary()

	t.Run("delivery URL with version", func(t *testing.T) {
		got, err := processor.Process("https://res.cloudinary.com/demo/image/upload/v1234567890/products/urban-runner.jpg", "products")
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1234567890/products/urban-runner.jpg", got.OriginalURL)
		assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/t_product_standard/v1234567890/products/urban-runner.jpg", got.StandardURL)
		assert.Equal(t, "products/urban-runner", got.PublicID)
	})

	t.Run("delivery URL without version", func(t *testing.T) {
		got, err := processor.Process("https://res.cloudinary.com/demo/image/upload/products/oxford.png", "products")
		require.NoError(t, err)
		assert.Equal(t, "products/oxford", got.PublicID)
		assert.Contains(t, got.StandardURL, "/upload/t_product_standard/products/oxford.png")
	})

	t.Run("non-cloudinary URL passes through", func(t *testing.T) {
		got, err := processor.Process("https://example.com/images/shoe.jpg", "products")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/images/shoe.jpg", got.OriginalURL)
		assert.Equal(t, "https://example.com/images/shoe.jpg", got.StandardURL)
		assert.Empty(t, got.PublicID)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		_, err := processor.Process("ftp://example.com/shoe.jpg", "products")
		assert.Error(t, err)
	})

	t.Run("short version segment is stripped", func(t *testing.T) {
		got, err := processor.Process("https://res.cloudinary.com/demo/image/upload/v2/shoe.jpg", "products")
		require.NoError(t, err)
		assert.Equal(t, "shoe", got.PublicID)
	})
}
