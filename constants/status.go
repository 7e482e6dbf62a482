package constants

// User role
const (
	RoleCustomer   = 0
	RoleHouseOwner = 1
	RoleAdmin      = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
	BookingStatusNoShow    = 4
)

// Payment status
const (
	PaymentStatusPending       = 0
	PaymentStatusPaid          = 1
	PaymentStatusPartiallyPaid = 2
	PaymentStatusRefunded      = 3
	PaymentStatusFailed        = 4
)
