package handlers

// HandlerBundle aggregates the handler groups so route registration takes a
// single dependency.
type HandlerBundle struct {
	User      *UserHandler
	Pet       *PetHandler
	Caregiver *CaregiverHandler
	Booking   *BookingHandler
	Catalog   *CatalogHandler
	Payment   *PaymentHandler
	Community *CommunityHandler
}
