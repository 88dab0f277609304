package catalog

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

func loadDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestDefault_LoadsFixture(t *testing.T) {
	c := loadDefault(t)

	assert.Equal(t, 22, c.Len())
	p, err := c.Get("liquid-tribe")
	require.NoError(t, err)
	assert.Equal(t, "LIQUID TRIBE", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(28)))
	assert.Equal(t, 50, p.Stock)
	assert.True(t, p.InStock())
}

func TestGet_Missing(t *testing.T) {
	c := loadDefault(t)

	_, err := c.Get("nope")
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, common.StatusNotFound, cmdErr.Code)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := loadDefault(t)

	p, err := c.Get("liquid-tribe")
	require.NoError(t, err)
	p.Tags[0] = "mutated"

	again, err := c.Get("liquid-tribe")
	require.NoError(t, err)
	assert.Equal(t, "sensitive skin", again.Tags[0])
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{{ID: "a"}, {ID: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgProductExists)
}

func TestFeaturedAndNewArrivals(t *testing.T) {
	c := loadDefault(t)

	assert.Equal(t, []string{
		"liquid-tribe", "blackpride-soap", "acne-vanish-toner",
		"glittax-milk", "heal-drops", "forbearance",
	}, ids(c.Featured()))
	assert.Len(t, c.NewArrivals(), 13)
}

func TestCategories(t *testing.T) {
	c := loadDefault(t)

	assert.Equal(t, []string{
		"all", "balms", "cleansers", "creams", "gels", "masks",
		"oils", "scrubs", "serums", "soaps", "toners",
	}, c.Categories())
}

func TestSearch_TermMatchesNameDescriptionCategoryAndTags(t *testing.T) {
	c := loadDefault(t)

	result, err := c.Search(Query{Search: "  ACNE "})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"acne-vanish-toner", "shed-it-off-scrub", "acne-vanish-wash", "acne-vanish-cream",
	}, ids(result))
}

func TestSearch_Category(t *testing.T) {
	c := loadDefault(t)

	result, err := c.Search(Query{Category: "toners"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"acne-vanish-toner", "tender-moist-toner"}, ids(result))

	all, err := c.Search(Query{Category: CategoryAll})
	require.NoError(t, err)
	assert.Len(t, all, 22)
}

func TestSearch_PriceRange(t *testing.T) {
	c := loadDefault(t)

	result, err := c.Search(Query{MinPrice: decimal.NewFromInt(60), Sort: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"mirabel-juice", "heal-drops"}, ids(result))

	result, err = c.Search(Query{MaxPrice: decimal.NewFromInt(28), Sort: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"lipentance", "liquid-tribe"}, ids(result))
}

func TestSearch_InvalidPriceRange(t *testing.T) {
	c := loadDefault(t)

	_, err := c.Search(Query{MinPrice: decimal.NewFromInt(50), MaxPrice: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.Equal(t, ErrMsgPriceRangeInvalid, err.Error())
}

func TestSearch_Sorts(t *testing.T) {
	c := loadDefault(t)

	byPriceDesc, err := c.Search(Query{Sort: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, "heal-drops", byPriceDesc[0].ID)

	byName, err := c.Search(Query{Sort: SortNameAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"acne-vanish-cream", "acne-vanish-toner", "acne-vanish-wash"}, ids(byName[:3]))

	byNameDesc, err := c.Search(Query{Sort: SortNameDesc})
	require.NoError(t, err)
	assert.Equal(t, ids(byName)[len(byName)-1], byNameDesc[0].ID)

	byRating, err := c.Search(Query{Sort: SortRating})
	require.NoError(t, err)
	assert.Equal(t, []string{"blackpride-soap", "glittax-milk"}, ids(byRating[:2]))

	featured, err := c.Search(Query{})
	require.NoError(t, err)
	for i, p := range featured[:6] {
		assert.True(t, p.Featured, "position %d", i)
	}
	assert.False(t, featured[6].Featured)
}

func TestSearch_UnknownSort(t *testing.T) {
	c := loadDefault(t)

	_, err := c.Search(Query{Sort: "cheapest"})
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, common.StatusInvalidArgument, cmdErr.Code)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"LIQUID TRIBE":           "liquid-tribe",
		"AUTOGRAPH (Face Cream)": "autograph-face-cream",
		"  Glow -- Oil!  ":       "glow-oil",
		"!!!":                    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestAdd(t *testing.T) {
	c := loadDefault(t)

	p, err := c.Add(NewProduct{
		Name:   "Glow Serum",
		Price:  decimal.RequireFromString("33.50"),
		Stock:  7,
		Tags:   []string{" glow ", ""},
		Images: []string{"/assets/images/products/glow-serum-1.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "glow-serum", p.ID)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, DefaultRating, p.Rating)
	assert.Equal(t, []string{"glow"}, p.Tags)
	assert.Equal(t, 23, c.Len())

	got, err := c.Get("glow-serum")
	require.NoError(t, err)
	assert.Equal(t, "Glow Serum", got.Name)
}

func TestAdd_Validation(t *testing.T) {
	images := []string{"/a.jpg"}
	badRating := 6.0
	tests := []struct {
		name string
		np   NewProduct
		msg  string
		code common.StatusCode
	}{
		{"missing name", NewProduct{Images: images}, ErrMsgNameRequired, common.StatusInvalidArgument},
		{"negative stock", NewProduct{Name: "x", Stock: -1, Images: images}, ErrMsgStockNegative, common.StatusInvalidArgument},
		{"negative price", NewProduct{Name: "x", Price: decimal.NewFromInt(-1), Images: images}, ErrMsgPriceNegative, common.StatusInvalidArgument},
		{"rating out of range", NewProduct{Name: "x", Rating: &badRating, Images: images}, ErrMsgRatingRange, common.StatusInvalidArgument},
		{"no images", NewProduct{Name: "x"}, ErrMsgImageRequired, common.StatusInvalidArgument},
		{"duplicate", NewProduct{Name: "Liquid Tribe", Images: images}, ErrMsgProductExists + ": liquid-tribe", common.StatusFailedPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadDefault(t)
			_, err := c.Add(tt.np)
			var cmdErr *common.CommandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.code, cmdErr.Code)
			assert.Equal(t, tt.msg, cmdErr.Message)
		})
	}
}

func TestAdd_EmptyListsStayEmpty(t *testing.T) {
	c := loadDefault(t)

	p, err := c.Add(NewProduct{Name: "Bare Balm", Images: []string{"/bare.jpg"}})
	require.NoError(t, err)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Reviews)

	got, err := c.Get("bare-balm")
	require.NoError(t, err)
	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reviews":[]`)
	assert.Contains(t, string(data), `"tags":[]`)
}

func TestClone_KeepsNilAndEmptyDistinct(t *testing.T) {
	empty := Product{Tags: []string{}}.Clone()
	assert.NotNil(t, empty.Tags)
	assert.Nil(t, Product{}.Clone().Tags)
}
