package interfaces

import "context"

// IQRCodeImageResolver turns whatever image material a provider returned into
// a single inline data URI. Preference order: provider base64, provider image
// URL, rendering the code string through a third-party service. Returns the
// empty string when no image can be produced; the charge is still usable
// through its copy-paste code.
type IQRCodeImageResolver interface {
	Resolve(ctx context.Context, imageBase64, imageURL, code string) string
}
