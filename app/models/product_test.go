package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDiscount(t *testing.T) {
	assert.True(t, Product{Price: 55, OriginalPrice: 65}.HasDiscount())
	assert.False(t, Product{Price: 55}.HasDiscount(), "no original price, no discount")
	assert.False(t, Product{Price: 55, OriginalPrice: 55}.HasDiscount(), "equal price is not a discount")
	assert.False(t, Product{Price: 55, OriginalPrice: 40}.HasDiscount(), "price above original is not a discount")
}

func TestProductInputCarriesOptionalDetailFields(t *testing.T) {
	payload := `{
		"categoryId": "65f000000000000000000001",
		"titlePrimary": "Kebab",
		"titleSecondary": "كباب",
		"price": 55,
		"nutritionInfo": {"calories": 420, "protein": 32},
		"allergens": ["gluten", "sesame"],
		"preparationTime": 20
	}`

	var in ProductInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	require.NotNil(t, in.NutritionInfo)
	require.NotNil(t, in.NutritionInfo.Calories)
	assert.Equal(t, 420.0, *in.NutritionInfo.Calories)
	require.NotNil(t, in.NutritionInfo.Protein)
	assert.Equal(t, 32.0, *in.NutritionInfo.Protein)
	assert.Nil(t, in.NutritionInfo.Carbs, "unset nutrition fields stay nil")

	assert.Equal(t, []string{"gluten", "sesame"}, in.Allergens)
	require.NotNil(t, in.PreparationTime)
	assert.Equal(t, 20, *in.PreparationTime)
}

func TestProductOmitsEmptyDetailFields(t *testing.T) {
	raw, err := json.Marshal(Product{TitlePrimary: "Hummus", Price: 12.5})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotContains(t, out, "nutritionInfo")
	assert.NotContains(t, out, "allergens")
	assert.NotContains(t, out, "preparationTime")
}
