package keypress

import "time"

const (
	SourceHTTP = "http"
	SourceGRPC = "grpc"
)

// Press is a raw key sent by a counter device. The key is not validated
// against the currency modes until a display resolves it.
type Press struct {
	Key       string
	Source    string
	PressedAt time.Time
}
