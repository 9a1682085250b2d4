// File: ezero/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking *BookingHandler
	Records *RecordsHandler
	Catalog *CatalogHandler
	Admin   *AdminHandler
}
