package storefront_test

import (
	"testing"

	"jeansfactory/pkg/storefront"

	"github.com/stretchr/testify/assert"
)

func TestRouter_PublicViews(t *testing.T) {
	r := storefront.NewRouter(func() bool { return false }, func() bool { return false })
	assert.Equal(t, storefront.ViewHome, r.Current())

	for _, v := range []storefront.View{
		storefront.ViewCart,
		storefront.ViewLogin,
		storefront.ViewRegister,
		storefront.ViewHome,
	} {
		assert.NoError(t, r.Navigate(v))
		assert.Equal(t, v, r.Current())
	}
}

func TestRouter_GatedViewsRedirectToLogin(t *testing.T) {
	loggedIn := false
	r := storefront.NewRouter(func() bool { return loggedIn }, func() bool { return false })

	assert.NoError(t, r.Navigate(storefront.ViewOrders))
	assert.Equal(t, storefront.ViewLogin, r.Current())

	loggedIn = true
	assert.NoError(t, r.Navigate(storefront.ViewOrders))
	assert.Equal(t, storefront.ViewOrders, r.Current())
}

func TestRouter_SellRequiresAdmin(t *testing.T) {
	admin := false
	r := storefront.NewRouter(func() bool { return true }, func() bool { return admin })

	err := r.Navigate(storefront.ViewSell)
	assert.Error(t, err)
	assert.NotEqual(t, storefront.ViewSell, r.Current())

	admin = true
	assert.NoError(t, r.Navigate(storefront.ViewSell))
	assert.Equal(t, storefront.ViewSell, r.Current())
}

func TestRouter_UnknownView(t *testing.T) {
	r := storefront.NewRouter(func() bool { return true }, func() bool { return true })
	assert.Error(t, r.Navigate(storefront.View("checkout-wizard")))
	assert.Equal(t, storefront.ViewHome, r.Current())
}
