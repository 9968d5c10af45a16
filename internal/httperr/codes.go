package httperr

import "net/http"

const (
	CodeInvalidRequest     = "invalid_request"
	CodeMissingField       = "missing_field"
	CodeInvalidRole        = "invalid_role"
	CodeEmailExists        = "email_already_exists"
	CodeInvalidEmailDomain = "invalid_email_domain"
	CodeInvalidCategory    = "invalid_category"
	CodeInvalidPrice       = "invalid_price"
	CodeInvalidStatus      = "invalid_status"
	CodeMissingServiceID   = "missing_service_id"
	CodeInvalidCoordinates = "invalid_coordinates"
	CodeInvalidRadius      = "invalid_radius"
	CodeInvalidImage       = "invalid_image"

	CodeInvalidCredentials = "invalid_credentials"
	CodeTokenInvalid       = "token_invalid"
	CodeUserNotFound       = "user_not_found"

	CodeRoleMismatch  = "role_mismatch"
	CodeRoleForbidden = "role_forbidden"

	CodeServiceNotFound  = "service_not_found"
	CodeBookingNotFound  = "booking_not_found"
	CodeProviderNotFound = "provider_not_found"
	CodeCustomerNotFound = "customer_not_found"

	CodeTooManyAttempts  = "too_many_attempts"
	CodeMediaUnavailable = "media_unavailable"
	CodeInternal         = "internal_error"
)

type entry struct {
	status  int
	message string
}

var registry = map[string]entry{
	CodeInvalidRequest:     {http.StatusBadRequest, "Invalid request."},
	CodeMissingField:       {http.StatusBadRequest, "A required field is missing."},
	CodeInvalidRole:        {http.StatusBadRequest, "Role must be 'customer' or 'provider'."},
	CodeEmailExists:        {http.StatusBadRequest, "Email already exists."},
	CodeInvalidEmailDomain: {http.StatusBadRequest, "The email domain does not look valid."},
	CodeInvalidCategory:    {http.StatusBadRequest, "Invalid category."},
	CodeInvalidPrice:       {http.StatusBadRequest, "Price must be zero or positive."},
	CodeInvalidStatus:      {http.StatusBadRequest, "Invalid status."},
	CodeMissingServiceID:   {http.StatusBadRequest, "service_id is required."},
	CodeInvalidCoordinates: {http.StatusBadRequest, "Valid lat and lon are required."},
	CodeInvalidRadius:      {http.StatusBadRequest, "Radius must be a non-negative number."},
	CodeInvalidImage:       {http.StatusBadRequest, "Image must be a JPEG, PNG or WebP file."},

	CodeInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials."},
	CodeTokenInvalid:       {http.StatusUnauthorized, "Invalid or expired token."},
	CodeUserNotFound:       {http.StatusUnauthorized, "User not found."},

	CodeRoleMismatch:  {http.StatusForbidden, "You are not registered with that role."},
	CodeRoleForbidden: {http.StatusForbidden, "You do not have access to this resource."},

	CodeServiceNotFound:  {http.StatusNotFound, "Service not found."},
	CodeBookingNotFound:  {http.StatusNotFound, "Booking not found."},
	CodeProviderNotFound: {http.StatusNotFound, "Provider not found."},
	CodeCustomerNotFound: {http.StatusNotFound, "Customer not found."},

	CodeTooManyAttempts:  {http.StatusTooManyRequests, "Too many failed attempts, try again later."},
	CodeMediaUnavailable: {http.StatusServiceUnavailable, "Image uploads are not configured."},
}

// StatusFor maps a business code to its HTTP status. Unknown codes are 500.
func StatusFor(code string) int {
	if e, ok := registry[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}

func messageFor(code string) string {
	if e, ok := registry[code]; ok {
		return e.message
	}
	return "Unexpected error."
}
