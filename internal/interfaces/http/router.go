package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/breadcraft/backoffice/internal/application/inventory"
	"github.com/breadcraft/backoffice/internal/application/purchases"
	"github.com/breadcraft/backoffice/internal/application/sales"
	"github.com/breadcraft/backoffice/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC      *inventory.LedgerUseCase
	ReconcilerUC  *sales.ReconcilerUseCase
	ProcurementUC *purchases.ProcurementUseCase
	ClientUC      *usecase.ClientUseCase
	ProductUC     *usecase.ProductUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Materias primas y libro de inventario
	materials := api.Group("/raw-materials")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	materials.Post("/", inventoryHandler.CreateMaterial)
	materials.Get("/", inventoryHandler.ListMaterials)
	materials.Get("/:id", inventoryHandler.GetMaterial)
	materials.Get("/:id/batches", inventoryHandler.ListMaterialBatches)
	materials.Post("/:id/consumption", inventoryHandler.RecordConsumption)
	materials.Post("/:id/restock", inventoryHandler.Restock)

	inv := api.Group("/inventory")
	inv.Get("/batches", inventoryHandler.ListBatches)
	inv.Get("/alerts", inventoryHandler.ListAlerts)

	// Ventas y devoluciones
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.ReconcilerUC)
	salesGroup.Post("/", salesHandler.CreateSale)
	salesGroup.Get("/", salesHandler.ListSales)
	salesGroup.Get("/:id", salesHandler.GetSale)
	salesGroup.Post("/:id/confirm", salesHandler.ConfirmSale)
	salesGroup.Post("/:id/cancel", salesHandler.CancelSale)
	salesGroup.Post("/:id/returns", salesHandler.ProcessReturn)
	salesGroup.Get("/:id/returns", salesHandler.ListReturns)

	// Créditos de tienda
	credits := api.Group("/credits")
	credits.Get("/", salesHandler.ListCredits)
	credits.Post("/:id/apply", salesHandler.ApplyCredit)
	credits.Post("/:id/expire", salesHandler.ExpireCredit)

	// Proveedores y compras
	purchaseHandler := NewPurchaseHandler(deps.ProcurementUC)
	suppliers := api.Group("/suppliers")
	suppliers.Post("/", purchaseHandler.CreateSupplier)
	suppliers.Get("/", purchaseHandler.ListSuppliers)
	suppliers.Get("/:id", purchaseHandler.GetSupplier)
	suppliers.Get("/:id/purchases", purchaseHandler.ListSupplierPurchases)

	purchasesGroup := api.Group("/purchases")
	purchasesGroup.Post("/", purchaseHandler.RegisterPurchase)
	purchasesGroup.Get("/", purchaseHandler.ListPurchases)
	purchasesGroup.Get("/:id", purchaseHandler.GetPurchase)
	purchasesGroup.Post("/:id/complete", purchaseHandler.CompletePurchase)
	purchasesGroup.Post("/:id/cancel", purchaseHandler.CancelPurchase)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Get("/:id/history", clientHandler.History)
	clients.Get("/:id/credits", salesHandler.ListClientCredits)

	// Productos terminados
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
}
