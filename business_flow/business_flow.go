// Package businessflow contains the core business logic and use cases for the listing engine
package businessflow

// RequestIDKey is the header carrying the request correlation id.
const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for request logging
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request correlation id
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}
