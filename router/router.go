package router

import (
	"github.com/gin-gonic/gin"

	"github.com/elgato/elgato-app/controllers"
	"github.com/elgato/elgato-app/events"
	"github.com/elgato/elgato-app/middlewares"
	"github.com/elgato/elgato-app/services"
)

// App bundles the services the router wires into controllers.
type App struct {
	Catalog   *services.CatalogService
	Carts     *services.CartService
	Orders    *services.OrderService
	Sessions  *services.SessionService
	Favorites *services.FavoriteService
	Hub       *events.Hub
	BaseURL   string
}

func SetupRouter(app App) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(app.Sessions)
	menuCtrl := controllers.NewMenuController(app.Catalog, app.BaseURL)
	cartCtrl := controllers.NewCartController(app.Carts, app.Catalog)
	orderCtrl := controllers.NewOrderController(app.Orders, app.Carts)
	adminCtrl := controllers.NewAdminController(app.Orders, app.Catalog)
	favCtrl := controllers.NewFavoriteController(app.Favorites, app.Catalog)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/session", userCtrl.GetSession)

	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	r.GET("/menus/:food_id", menuCtrl.GetMenuByID)
	r.GET("/menus/:food_id/qr", menuCtrl.GetMenuQRCode)
	r.GET("/search", menuCtrl.SearchMenus)

	r.GET("/favorites", favCtrl.GetFavorites)
	r.POST("/favorites/:food_id", favCtrl.AddFavorite)
	r.DELETE("/favorites/:food_id", favCtrl.RemoveFavorite)

	r.GET("/events/ws", controllers.EventsHandler(app.Hub))

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:food_id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:food_id", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:order_id", adminCtrl.DeleteOrder)
		admin.GET("/revenue", adminCtrl.GetRevenue)
		admin.GET("/foods", adminCtrl.GetAllFoods)
		admin.PATCH("/foods/:food_id", adminCtrl.UpdateFood)
	}

	return r
}
