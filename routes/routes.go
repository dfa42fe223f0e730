// routes/routes.go
package routes

import (
	"go-storefront/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, pageController *controllers.PageController, cartController *controllers.CartController, quickAddController *controllers.QuickAddController, checkoutController *controllers.CheckoutController) {
	// Pages
	router.HandleFunc("/", pageController.Home).Methods("GET")
	router.HandleFunc("/products", pageController.Products).Methods("GET")
	router.HandleFunc("/Product/{slug}", pageController.ProductDetail).Methods("GET")
	router.HandleFunc("/success", pageController.Success).Methods("GET")
	router.HandleFunc("/auth/login", pageController.Login).Methods("GET")
	router.HandleFunc("/auth/login", pageController.LoginSubmit).Methods("POST")
	router.HandleFunc("/theme", pageController.ToggleTheme).Methods("POST")

	// Cart routes
	router.HandleFunc("/cart", cartController.ViewCart).Methods("GET")
	router.HandleFunc("/cart/add", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/remove", cartController.RemoveCartItem).Methods("POST")

	// Favorites routes
	router.HandleFunc("/favorites", cartController.ViewFavorites).Methods("GET")
	router.HandleFunc("/favorites/toggle", cartController.ToggleFavorite).Methods("POST")
	router.HandleFunc("/favorites/remove", cartController.RemoveFavItem).Methods("POST")

	// Quick-add drawer
	router.HandleFunc("/quickadd/open", quickAddController.Open).Methods("POST")
	router.HandleFunc("/quickadd/size", quickAddController.SetSize).Methods("POST")
	router.HandleFunc("/quickadd/quantity", quickAddController.SetQuantity).Methods("POST")
	router.HandleFunc("/quickadd/confirm", quickAddController.Confirm).Methods("POST")
	router.HandleFunc("/quickadd/close", quickAddController.Close).Methods("POST")

	// Checkout
	router.HandleFunc("/checkout", checkoutController.Show).Methods("GET")
	router.HandleFunc("/checkout", checkoutController.Submit).Methods("POST")

	// Dashboard
	router.HandleFunc("/dashboard", pageController.Dashboard).Methods("GET")
	router.HandleFunc("/dashboard/products", pageController.DashboardProducts).Methods("GET")
	router.HandleFunc("/dashboard/products/add", pageController.DashboardAddProduct).Methods("GET")
	router.HandleFunc("/dashboard/products/add", pageController.DashboardAddProductSubmit).Methods("POST")
}
