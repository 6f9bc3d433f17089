// Package media rewrites third-party ship and cabin image URLs into resized
// Cloudinary fetch URLs.
package media

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"go.uber.org/zap"
)

// Imager returns a display URL for src at the given width.
type Imager interface {
	URL(src string, width int) string
}

// Proxy builds Cloudinary fetch URLs. A Proxy without credentials returns
// source URLs unchanged.
type Proxy struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewProxy creates a Proxy for the given account. Empty credentials yield a
// pass-through proxy.
func NewProxy(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*Proxy, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		logger.Info("cloudinary not configured, serving images from origin")
		return &Proxy{logger: logger}, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media.NewProxy: failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Proxy{cld: cld, logger: logger}, nil
}

// Enabled reports whether URLs are rewritten.
func (p *Proxy) Enabled() bool {
	return p != nil && p.cld != nil
}

// URL returns a fetch URL for src limited to width pixels. Non-http sources,
// URLs already on Cloudinary and any build failure fall back to src.
func (p *Proxy) URL(src string, width int) string {
	if !p.Enabled() || !isRemote(src) || strings.Contains(src, "res.cloudinary.com") {
		return src
	}
	img, err := p.cld.Image(src)
	if err != nil {
		p.logger.Warn("failed to build image asset", zap.String("src", src), zap.Error(err))
		return src
	}
	img.DeliveryType = api.Fetch
	img.Transformation = transformation(width)

	out, err := img.String()
	if err != nil {
		p.logger.Warn("failed to build image url", zap.String("src", src), zap.Error(err))
		return src
	}
	return out
}

func transformation(width int) string {
	if width <= 0 {
		return "f_auto,q_auto"
	}
	return fmt.Sprintf("w_%d,c_limit,f_auto,q_auto", width)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "http://")
}
