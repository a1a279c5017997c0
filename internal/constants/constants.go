package constants

import "time"

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

const AccessTokenDuration = time.Hour

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// OrderStatusInProgressID is the seeded "IN PROGRESS" status. An order carrying
// it is treated as open by the order workflow.
const OrderStatusInProgressID int64 = 1
