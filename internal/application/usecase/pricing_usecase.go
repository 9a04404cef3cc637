package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/Multicanal-api/internal/application/dto"
	"github.com/jhoicas/Multicanal-api/internal/domain"
	"github.com/jhoicas/Multicanal-api/internal/domain/entity"
	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
	"github.com/jhoicas/Multicanal-api/internal/domain/repository"
)

// PricingUseCase orquesta el motor de rentabilidad: carga producto y canales,
// corre el agregado y da forma a la respuesta. La memoización vive aquí (el
// caller del motor), nunca dentro del motor: la clave es un fingerprint del
// contenido de (base de costo, canales), así que un cambio en cualquier campo
// invalida la entrada sola.
type PricingUseCase struct {
	products repository.ProductRepository
	channels repository.SalesChannelRepository
	memo     *gocache.Cache // nil = memoización deshabilitada
}

// NewPricingUseCase construye el caso de uso. memoTTL <= 0 deshabilita la
// memoización de agregados.
func NewPricingUseCase(products repository.ProductRepository, channels repository.SalesChannelRepository, memoTTL time.Duration) *PricingUseCase {
	var memo *gocache.Cache
	if memoTTL > 0 {
		memo = gocache.New(memoTTL, 2*memoTTL)
	}
	return &PricingUseCase{products: products, channels: channels, memo: memo}
}

// ProductPricing calcula la vista de rentabilidad completa de un producto:
// resultado por canal habilitado más el resumen de portafolio.
func (uc *PricingUseCase) ProductPricing(productID string) (*dto.ProductPricingResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.channels.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	basis := pricing.CostBasis{BaseCost: product.BaseCost, TaxPercent: product.TaxPercent}
	configs := make([]pricing.ChannelConfig, 0, len(list))
	for _, ch := range list {
		configs = append(configs, toChannelConfig(ch))
	}

	key := fingerprint(basis, configs)
	if uc.memo != nil {
		if cached, ok := uc.memo.Get(key); ok {
			return cached.(*dto.ProductPricingResponse), nil
		}
	}

	calcs, summary, err := pricing.Aggregate(basis, configs)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductPricingResponse{
		ProductID: productID,
		Channels:  make([]dto.ChannelPricingResponse, 0, len(calcs)),
		Summary:   dto.NewPortfolioSummaryResponse(summary),
	}
	for _, calc := range calcs {
		out.Channels = append(out.Channels, dto.NewChannelPricingResponse(calc))
	}

	if uc.memo != nil {
		uc.memo.Set(key, out, gocache.DefaultExpiration)
	}
	return out, nil
}

// Simulate evalúa un canal ad hoc contra una base de costo dada, sin tocar la
// persistencia. Útil para previsualizar un precio antes de guardarlo. La
// simulación evalúa el canal aunque Enabled venga en false.
func (uc *PricingUseCase) Simulate(in dto.SimulatePricingRequest) (*dto.ChannelPricingResponse, error) {
	if err := validateCostBasis(in.BaseCost, in.TaxPercent); err != nil {
		return nil, err
	}
	channel := &entity.SalesChannel{
		ChannelType: in.Channel.ChannelType,

		SalePrice:         in.Channel.SalePrice,
		CommissionPercent: in.Channel.CommissionPercent,
		ShippingCost:      in.Channel.ShippingCost,
		OtherCostValue:    in.Channel.OtherCostValue,
		FixedCostPercent:  in.Channel.FixedCostPercent,
		OtherCostPercent:  in.Channel.OtherCostPercent,

		PackagingCostValue:   in.Channel.PackagingCostValue,
		FinancialCostPercent: in.Channel.FinancialCostPercent,
		MarketingCostPercent: in.Channel.MarketingCostPercent,
		RebateValue:          in.Channel.RebateValue,
		RebatePercent:        in.Channel.RebatePercent,
		TacosCostPercent:     in.Channel.TacosCostPercent,
		InstallmentPercent:   in.Channel.InstallmentPercent,
		ProductCostFBA:       in.Channel.ProductCostFBA,
		ProductCostMLFull:    in.Channel.ProductCostMLFull,

		ProductCode: in.Channel.ProductCode,
	}
	if err := validateChannel(channel); err != nil {
		return nil, err
	}

	basis := pricing.CostBasis{BaseCost: in.BaseCost, TaxPercent: in.TaxPercent}
	calc, err := pricing.Evaluate(basis, toChannelConfig(channel))
	if err != nil {
		return nil, err
	}
	out := dto.NewChannelPricingResponse(calc)
	return &out, nil
}

// ClassifyMargin expone el clasificador de salud para un margen suelto (lo usa
// el endpoint de clasificación, no solo el promedio del portafolio).
func (uc *PricingUseCase) ClassifyMargin(marginPercent string) (string, error) {
	m, err := parseDecimal(marginPercent)
	if err != nil {
		return "", err
	}
	return string(pricing.Classify(m)), nil
}

func toChannelConfig(ch *entity.SalesChannel) pricing.ChannelConfig {
	return pricing.ChannelConfig{
		ChannelType: pricing.ChannelType(ch.ChannelType),
		Enabled:     ch.Enabled,

		SalePrice:         ch.SalePrice,
		CommissionPercent: ch.CommissionPercent,
		ShippingCost:      ch.ShippingCost,
		OtherCostValue:    ch.OtherCostValue,
		FixedCostPercent:  ch.FixedCostPercent,
		OtherCostPercent:  ch.OtherCostPercent,

		PackagingCostValue:   ch.PackagingCostValue,
		FinancialCostPercent: ch.FinancialCostPercent,
		MarketingCostPercent: ch.MarketingCostPercent,
		RebateValue:          ch.RebateValue,
		RebatePercent:        ch.RebatePercent,
		TacosCostPercent:     ch.TacosCostPercent,
		InstallmentPercent:   ch.InstallmentPercent,
		ProductCostFBA:       ch.ProductCostFBA,
		ProductCostMLFull:    ch.ProductCostMLFull,

		ProductCode: ch.ProductCode,
	}
}

// fingerprint produce una huella SHA-256 del contenido de los insumos del
// cálculo. Dos portafolios con los mismos valores comparten huella; cualquier
// cambio de campo, orden o habilitado la cambia.
func fingerprint(basis pricing.CostBasis, configs []pricing.ChannelConfig) string {
	var b strings.Builder
	b.WriteString(basis.BaseCost.String())
	b.WriteByte('|')
	b.WriteString(basis.TaxPercent.String())
	for _, cfg := range configs {
		b.WriteByte('\n')
		b.WriteString(string(cfg.ChannelType))
		b.WriteByte('|')
		b.WriteString(strconv.FormatBool(cfg.Enabled))
		for _, v := range []string{
			cfg.SalePrice.String(),
			cfg.CommissionPercent.String(),
			cfg.ShippingCost.String(),
			cfg.OtherCostValue.String(),
			cfg.FixedCostPercent.String(),
			cfg.OtherCostPercent.String(),
			cfg.PackagingCostValue.String(),
			cfg.FinancialCostPercent.String(),
			cfg.MarketingCostPercent.String(),
			cfg.RebateValue.String(),
			cfg.RebatePercent.String(),
			cfg.TacosCostPercent.String(),
			cfg.InstallmentPercent.String(),
			cfg.ProductCostFBA.String(),
			cfg.ProductCostMLFull.String(),
			cfg.ProductCode,
		} {
			b.WriteByte('|')
			b.WriteString(v)
		}
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
