package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Name(t *testing.T) {
	assert.Equal(t, "All Categories", CategoryAll.Name())
	assert.Equal(t, "Beauty & Hair", CategoryBeautyHair.Name())
	assert.Equal(t, "Food & Baking", CategoryFoodBaking.Name())
	assert.Equal(t, "Other", CategoryOther.Name())

	// Unknown ids render as Other without being rewritten.
	assert.Equal(t, "Other", Category(42).Name())
	assert.Equal(t, "Other", Category(-1).Name())
}

func TestCategory_Valid(t *testing.T) {
	assert.False(t, CategoryAll.Valid())
	assert.True(t, CategoryBeautyHair.Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, Category(9).Valid())
	assert.False(t, Category(-1).Valid())
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 8)
	assert.Equal(t, CategoryBeautyHair, cats[0])
	assert.Equal(t, CategoryOther, cats[7])
}
