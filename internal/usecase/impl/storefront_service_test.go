package impl

import (
	"context"
	"testing"

	"foodtruck/config"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/repository"
	mockRepo "foodtruck/internal/mocks/repository"
	mockService "foodtruck/internal/mocks/service"
	"foodtruck/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefrontServiceFixtures struct {
	service    usecase.StorefrontUsecase
	tenantRepo *mockRepo.MockTenantRepository
	qrCodeSvc  *mockService.MockQRCodeService
}

func createTestStorefrontService(t *testing.T, baseDomain string) storefrontServiceFixtures {
	cfg := &config.Config{Storefront: &config.StorefrontConfig{BaseDomain: baseDomain}}
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	qrCodeSvc := mockService.NewMockQRCodeService(t)

	return storefrontServiceFixtures{
		service:    NewStorefrontService(cfg, tenantRepo, qrCodeSvc, newDiscardLogger()),
		tenantRepo: tenantRepo,
		qrCodeSvc:  qrCodeSvc,
	}
}

func TestStorefrontService_StorefrontURL(t *testing.T) {
	fx := createTestStorefrontService(t, " .trucks.example.com. ")
	ctx := context.Background()
	tenant := lunchTenant()
	tenant.Subdomain = "Tacos"

	fx.tenantRepo.EXPECT().FindBySubdomain(ctx, "tacos").Return(tenant, nil)

	link, err := fx.service.StorefrontURL(ctx, "tacos")

	require.NoError(t, err)
	assert.Equal(t, "https://tacos.trucks.example.com", link)
}

func TestStorefrontService_StorefrontURL_NotConfigured(t *testing.T) {
	fx := createTestStorefrontService(t, "")

	_, err := fx.service.StorefrontURL(context.Background(), "tacos")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base domain")
}

func TestStorefrontService_GenerateQRCode(t *testing.T) {
	fx := createTestStorefrontService(t, "trucks.example.com")
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.tenantRepo.EXPECT().FindBySubdomain(ctx, "tacos").Return(lunchTenant(), nil)
	fx.qrCodeSvc.EXPECT().GenerateURLQR("https://tacos.trucks.example.com").Return(png, nil)

	got, err := fx.service.GenerateQRCode(ctx, "tacos")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestStorefrontService_GenerateQRCode_Errors(t *testing.T) {
	t.Run("unknown tenant", func(t *testing.T) {
		fx := createTestStorefrontService(t, "trucks.example.com")
		ctx := context.Background()

		fx.tenantRepo.EXPECT().FindBySubdomain(ctx, "ghost").Return(nil, repository.ErrTenantNotFound)

		_, err := fx.service.GenerateQRCode(ctx, "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)
	})

	t.Run("encoder failure", func(t *testing.T) {
		fx := createTestStorefrontService(t, "trucks.example.com")
		ctx := context.Background()

		fx.tenantRepo.EXPECT().FindBySubdomain(ctx, "tacos").Return(lunchTenant(), nil)
		fx.qrCodeSvc.EXPECT().GenerateURLQR("https://tacos.trucks.example.com").Return(nil, errors.New("too long"))

		_, err := fx.service.GenerateQRCode(ctx, "tacos")

		assert.ErrorIs(t, err, domainerrors.ErrQRCodeGenerationFailed)
	})
}
