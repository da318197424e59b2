package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"foodtruck/config"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/repository"
	"foodtruck/internal/domain/service"
	"foodtruck/internal/usecase"

	"github.com/pkg/errors"
)

type storefrontService struct {
	baseDomain string
	tenantRepo repository.TenantRepository
	qrCodeSvc  service.QRCodeService
	logger     *slog.Logger
}

// NewStorefrontService creates a new storefront service instance
func NewStorefrontService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	qrCodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	var baseDomain string
	if cfg != nil && cfg.Storefront != nil {
		baseDomain = strings.Trim(strings.TrimSpace(cfg.Storefront.BaseDomain), ".")
	}

	return &storefrontService{
		baseDomain: baseDomain,
		tenantRepo: tenantRepo,
		qrCodeSvc:  qrCodeSvc,
		logger:     logger,
	}
}

// StorefrontURL returns https://<subdomain>.<baseDomain> for an existing tenant.
func (s *storefrontService) StorefrontURL(ctx context.Context, subdomain string) (string, error) {
	if s.baseDomain == "" {
		return "", errors.New("storefront base domain is not configured")
	}

	tenant, err := s.tenantRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return "", mapTenantError(err, "failed to find tenant")
	}

	storefront := url.URL{
		Scheme: "https",
		Host:   strings.ToLower(tenant.Subdomain) + "." + s.baseDomain,
	}

	return storefront.String(), nil
}

// GenerateQRCode renders the storefront URL as a PNG QR code.
func (s *storefrontService) GenerateQRCode(ctx context.Context, subdomain string) ([]byte, error) {
	link, err := s.StorefrontURL(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GenerateURLQR(link)
	if err != nil {
		s.logger.Error("Failed to generate storefront QR code",
			slog.String("subdomain", subdomain),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrQRCodeGenerationFailed, err.Error())
	}

	return png, nil
}
