package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/laziz/app/controllers"
	"github.com/shashiranjanraj/laziz/app/models"
	"github.com/shashiranjanraj/laziz/app/repositories"
	"github.com/shashiranjanraj/laziz/internal/cart"
	"github.com/shashiranjanraj/laziz/pkg/router"
	"github.com/shashiranjanraj/laziz/pkg/session"
	"github.com/shashiranjanraj/laziz/pkg/testkit"
)

type fakeProductFinder struct {
	products map[string]models.Product
}

func (f *fakeProductFinder) FindByID(_ context.Context, id string) (models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func newCartHandler(products ...models.Product) http.Handler {
	finder := &fakeProductFinder{products: map[string]models.Product{}}
	for _, p := range products {
		finder.products[p.ID.Hex()] = p
	}

	c := controllers.NewCartController(cart.NewStore(), finder)

	r := router.New()
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Get("/api/cart", "cart.show", c.Show)
	r.Post("/api/cart/items", "cart.add", c.AddItem)
	r.Put("/api/cart/items/{id}", "cart.update", c.UpdateItem)
	r.Delete("/api/cart/items/{id}", "cart.remove", c.RemoveItem)
	r.Delete("/api/cart", "cart.clear", c.Clear)
	return r.Handler()
}

func sampleProduct(title string, price float64) models.Product {
	return models.Product{
		ID:           primitive.NewObjectID(),
		CategoryID:   primitive.NewObjectID(),
		TitlePrimary: title,
		Price:        price,
		IsActive:     true,
	}
}

// do runs a request through the handler, carrying the session cookie of a
// previous response so the whole test talks to one cart.
func do(t *testing.T, h http.Handler, req *http.Request, cookies []*http.Cookie) (testkit.Envelope, []*http.Cookie, int) {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := testkit.Do(h, req)
	env := testkit.DecodeEnvelope(t, rec)
	if got := rec.Result().Cookies(); len(got) > 0 {
		cookies = got
	}
	return env, cookies, rec.Code
}

func TestCartFlow(t *testing.T) {
	kebab := sampleProduct("Kebab", 55)
	hummus := sampleProduct("Hummus", 12.5)
	h := newCartHandler(kebab, hummus)

	var cookies []*http.Cookie
	var ct cart.Cart

	// Empty cart on first read.
	env, cookies, code := do(t, h, testkit.JSONRequest(t, http.MethodGet, "/api/cart", nil), cookies)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, jsonInto(env, &ct))
	assert.Empty(t, ct.Lines)
	assert.Zero(t, ct.ItemCount)

	// Add the same product twice: one line, quantity 2.
	addBody := map[string]string{"productId": kebab.ID.Hex()}
	_, cookies, _ = do(t, h, testkit.JSONRequest(t, http.MethodPost, "/api/cart/items", addBody), cookies)
	env, cookies, code = do(t, h, testkit.JSONRequest(t, http.MethodPost, "/api/cart/items", addBody), cookies)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, jsonInto(env, &ct))
	require.Len(t, ct.Lines, 1)
	assert.Equal(t, 2, ct.Lines[0].Quantity)
	assert.Equal(t, "Kebab", ct.Lines[0].TitlePrimary)
	assert.Equal(t, 2, ct.ItemCount)
	assert.InDelta(t, 110, ct.Total, 1e-9)

	// Second product, then pin the first line's quantity.
	_, cookies, _ = do(t, h, testkit.JSONRequest(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": hummus.ID.Hex()}), cookies)
	env, cookies, code = do(t, h, testkit.JSONRequest(t, http.MethodPut, "/api/cart/items/"+kebab.ID.Hex(), map[string]int{"quantity": 3}), cookies)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, jsonInto(env, &ct))
	require.Len(t, ct.Lines, 2)
	assert.Equal(t, 4, ct.ItemCount)
	assert.InDelta(t, 3*55+12.5, ct.Total, 1e-9)

	// Quantity 0 removes the line.
	env, cookies, _ = do(t, h, testkit.JSONRequest(t, http.MethodPut, "/api/cart/items/"+kebab.ID.Hex(), map[string]int{"quantity": 0}), cookies)
	require.NoError(t, jsonInto(env, &ct))
	require.Len(t, ct.Lines, 1)
	assert.Equal(t, "Hummus", ct.Lines[0].TitlePrimary)

	// Removing an id that isn't in the cart changes nothing.
	env, cookies, code = do(t, h, testkit.JSONRequest(t, http.MethodDelete, "/api/cart/items/"+kebab.ID.Hex(), nil), cookies)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, jsonInto(env, &ct))
	assert.Len(t, ct.Lines, 1)

	// Clear empties everything.
	env, _, _ = do(t, h, testkit.JSONRequest(t, http.MethodDelete, "/api/cart", nil), cookies)
	require.NoError(t, jsonInto(env, &ct))
	assert.Empty(t, ct.Lines)
	assert.Zero(t, ct.ItemCount)
	assert.Zero(t, ct.Total)
}

func TestCartRejectsUnknownProduct(t *testing.T) {
	h := newCartHandler()

	body := map[string]string{"productId": primitive.NewObjectID().Hex()}
	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/api/cart/items", body))
	testkit.AssertError(t, rec, http.StatusNotFound)
}

func TestCartRejectsInactiveProduct(t *testing.T) {
	p := sampleProduct("Ghost", 20)
	p.IsActive = false
	h := newCartHandler(p)

	body := map[string]string{"productId": p.ID.Hex()}
	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/api/cart/items", body))
	testkit.AssertError(t, rec, http.StatusNotFound)
}

func jsonInto(env testkit.Envelope, dest interface{}) error {
	return json.Unmarshal(env.Data, dest)
}
