package guestdirectory

// Client statuses in the guest directory.
const (
	ClientStatusActive  = "active"
	ClientStatusBlocked = "blocked"
)

// Client is a hotel guest record from the guest directory service.
type Client struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status string  `json:"status"`
}

// IsActive reports whether the client may be attached to new bookings.
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// ErrorResponse is the error body returned by the guest directory.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
