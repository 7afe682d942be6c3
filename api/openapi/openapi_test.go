package openapi_test

import (
	"testing"

	"bakery/api/openapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// When
	doc, err := openapi.Load()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Bakery marketplace", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/offers/{offerId}/package-location"))
	assert.NotNil(t, doc.Paths.Find("/carts/{cartId}/checkout"))
}
