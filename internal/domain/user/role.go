package user

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanViewAnyBooking reports whether the role may read bookings it does not own.
func (r Role) CanViewAnyBooking() bool {
	return r == RoleAdmin || r == RoleVendor
}
