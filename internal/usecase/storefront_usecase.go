package usecase

import "context"

// StorefrontUsecase defines the use cases for a tenant's public storefront
type StorefrontUsecase interface {
	// StorefrontURL returns the public ordering URL of a tenant
	StorefrontURL(ctx context.Context, subdomain string) (string, error)

	// GenerateQRCode returns a PNG QR code pointing at the storefront
	GenerateQRCode(ctx context.Context, subdomain string) ([]byte, error)
}
