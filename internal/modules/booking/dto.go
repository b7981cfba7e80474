package booking

type CreateBookingRequest struct {
	ServiceDetailID int64  `json:"service_detail_id" binding:"required"`
	PackageID       string `json:"package_id" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Address         string `json:"address" binding:"required"`
	BookingDate     string `json:"booking_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddPaymentRequest struct {
	AmountPaid float64 `json:"amount_paid" binding:"required"`
}
