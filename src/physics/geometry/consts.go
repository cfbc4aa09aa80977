package geometry

const (
	// Tolerance is the fixed absolute threshold below which a quantity is
	// treated as zero by IsCollinear, IsPerpendicular and IsOnSurface.
	//
	// WARNING: this is not scale-invariant. A cross product grows with the
	// square of its operands' magnitudes, so very large vectors can fail
	// IsCollinear even when they are parallel to machine precision.
	Tolerance = 1e-9
)

const (
	// python-style repr switches to exponent notation outside [1e-4, 1e16)
	minPlainExponent = -4
	maxPlainExponent = 16
)
