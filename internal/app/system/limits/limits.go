// internal/app/system/limits/limits.go
package limits

// Response body size limits for upstream API calls.
// These limits keep a misbehaving upstream from exhausting memory.
const (
	// MaxUpstreamBody is the largest JSON document read from the Whop API.
	MaxUpstreamBody = 8 << 20 // 8 MB

	// MaxErrorBody is how much of a non-2xx response is kept for error messages.
	MaxErrorBody = 512
)
