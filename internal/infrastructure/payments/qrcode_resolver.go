package payments

import (
	"context"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

const (
	qrRenderEndpoint  = "https://api.qrserver.com/v1/create-qr-code/"
	qrRenderSize      = "1024x1024"
	imageFetchTimeout = 5 * time.Second
	dataURIPrefix     = "data:image/png;base64,"
)

// QRCodeImageResolver produces the inline image for a charge. All failures
// degrade to the empty string: a charge without an image is still payable
// through its copy-paste code, so image trouble never fails the request.
type QRCodeImageResolver struct {
	renderEndpoint string
	httpClient     *http.Client
}

var _ interfaces.IQRCodeImageResolver = (*QRCodeImageResolver)(nil)

func NewQRCodeImageResolver() *QRCodeImageResolver {
	return &QRCodeImageResolver{
		renderEndpoint: qrRenderEndpoint,
		httpClient:     &http.Client{Timeout: imageFetchTimeout},
	}
}

func (r *QRCodeImageResolver) Resolve(ctx context.Context, imageBase64, imageURL, code string) string {
	if imageBase64 != "" {
		// Providers disagree on whether the base64 comes with the data-URI
		// header already attached.
		if strings.HasPrefix(imageBase64, "data:") {
			return imageBase64
		}
		return dataURIPrefix + imageBase64
	}

	fetchURL := imageURL
	if fetchURL == "" && code != "" {
		fetchURL = r.renderEndpoint + "?size=" + qrRenderSize + "&data=" + url.QueryEscape(code)
	}
	if fetchURL == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		log.Printf("[pix][qrcode] build image request failed err=%v", err)
		return ""
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[pix][qrcode] image fetch failed err=%v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[pix][qrcode] image fetch status=%d", resp.StatusCode)
		return ""
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		log.Printf("[pix][qrcode] image read failed err=%v", err)
		return ""
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(body)
}
