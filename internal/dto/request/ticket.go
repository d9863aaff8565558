package request

// CreateTicketRequest books one seat of a showtime. Price and purchase date
// are never client-supplied; the service snapshots them.
type CreateTicketRequest struct {
	ShowtimeID    string `json:"showtimeId" validate:"required,uuid"`
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,max=100"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,max=20"`
	SeatNumber    int    `json:"seatNumber" validate:"required,gt=0"`
}

// UpdateTicketRequest overwrites the mutable ticket fields. Status is a
// closed set; anything else is rejected before it reaches the service.
type UpdateTicketRequest struct {
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,max=100"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,max=20"`
	SeatNumber    int    `json:"seatNumber" validate:"required,gt=0"`
	Status        string `json:"status" validate:"required,oneof=Active Cancelled Used"`
}
