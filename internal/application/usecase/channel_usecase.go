package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Multicanal-api/internal/application/dto"
	"github.com/jhoicas/Multicanal-api/internal/domain"
	"github.com/jhoicas/Multicanal-api/internal/domain/entity"
	"github.com/jhoicas/Multicanal-api/internal/domain/repository"
)

// ChannelUseCase casos de uso CRUD para los canales de venta de un producto.
// El tipo de canal y los rangos de fees se validan aquí, antes de persistir:
// el motor de pricing confía en que los datos guardados ya pasaron esta puerta.
type ChannelUseCase struct {
	channels repository.SalesChannelRepository
	products repository.ProductRepository
}

// NewChannelUseCase construye el caso de uso.
func NewChannelUseCase(channels repository.SalesChannelRepository, products repository.ProductRepository) *ChannelUseCase {
	return &ChannelUseCase{channels: channels, products: products}
}

// Create configura un canal de venta para un producto existente.
func (uc *ChannelUseCase) Create(productID string, in dto.CreateChannelRequest) (*dto.ChannelResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	channel := &entity.SalesChannel{
		ID:          uuid.New().String(),
		ProductID:   productID,
		ChannelType: in.ChannelType,
		Enabled:     in.Enabled,

		SalePrice:         in.SalePrice,
		CommissionPercent: in.CommissionPercent,
		ShippingCost:      in.ShippingCost,
		OtherCostValue:    in.OtherCostValue,
		FixedCostPercent:  in.FixedCostPercent,
		OtherCostPercent:  in.OtherCostPercent,

		PackagingCostValue:   in.PackagingCostValue,
		FinancialCostPercent: in.FinancialCostPercent,
		MarketingCostPercent: in.MarketingCostPercent,
		RebateValue:          in.RebateValue,
		RebatePercent:        in.RebatePercent,
		TacosCostPercent:     in.TacosCostPercent,
		InstallmentPercent:   in.InstallmentPercent,
		ProductCostFBA:       in.ProductCostFBA,
		ProductCostMLFull:    in.ProductCostMLFull,

		ProductCode: in.ProductCode,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validateChannel(channel); err != nil {
		return nil, err
	}
	if err := uc.channels.Create(channel); err != nil {
		return nil, err
	}
	return toChannelResponse(channel), nil
}

// GetByID obtiene un canal por ID.
func (uc *ChannelUseCase) GetByID(id string) (*dto.ChannelResponse, error) {
	channel, err := uc.channels.GetByID(id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	return toChannelResponse(channel), nil
}

// ListByProduct lista los canales configurados de un producto en orden de creación.
func (uc *ChannelUseCase) ListByProduct(productID string) (*dto.ChannelListResponse, error) {
	list, err := uc.channels.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChannelResponse, 0, len(list))
	for _, ch := range list {
		items = append(items, *toChannelResponse(ch))
	}
	return &dto.ChannelListResponse{Items: items}, nil
}

// Update actualiza la configuración de un canal (el tipo no se cambia).
func (uc *ChannelUseCase) Update(id string, in dto.UpdateChannelRequest) (*dto.ChannelResponse, error) {
	channel, err := uc.channels.GetByID(id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	if in.Enabled != nil {
		channel.Enabled = *in.Enabled
	}
	if in.SalePrice != nil {
		channel.SalePrice = *in.SalePrice
	}
	if in.CommissionPercent != nil {
		channel.CommissionPercent = *in.CommissionPercent
	}
	if in.ShippingCost != nil {
		channel.ShippingCost = *in.ShippingCost
	}
	if in.OtherCostValue != nil {
		channel.OtherCostValue = *in.OtherCostValue
	}
	if in.FixedCostPercent != nil {
		channel.FixedCostPercent = *in.FixedCostPercent
	}
	if in.OtherCostPercent != nil {
		channel.OtherCostPercent = *in.OtherCostPercent
	}
	if in.PackagingCostValue != nil {
		channel.PackagingCostValue = *in.PackagingCostValue
	}
	if in.FinancialCostPercent != nil {
		channel.FinancialCostPercent = *in.FinancialCostPercent
	}
	if in.MarketingCostPercent != nil {
		channel.MarketingCostPercent = *in.MarketingCostPercent
	}
	if in.RebateValue != nil {
		channel.RebateValue = *in.RebateValue
	}
	if in.RebatePercent != nil {
		channel.RebatePercent = *in.RebatePercent
	}
	if in.TacosCostPercent != nil {
		channel.TacosCostPercent = *in.TacosCostPercent
	}
	if in.InstallmentPercent != nil {
		channel.InstallmentPercent = *in.InstallmentPercent
	}
	if in.ProductCostFBA != nil {
		channel.ProductCostFBA = *in.ProductCostFBA
	}
	if in.ProductCostMLFull != nil {
		channel.ProductCostMLFull = *in.ProductCostMLFull
	}
	if in.ProductCode != nil {
		channel.ProductCode = *in.ProductCode
	}
	if err := validateChannel(channel); err != nil {
		return nil, err
	}
	channel.UpdatedAt = time.Now()
	if err := uc.channels.Update(channel); err != nil {
		return nil, err
	}
	return toChannelResponse(channel), nil
}

// Delete elimina un canal por ID.
func (uc *ChannelUseCase) Delete(id string) error {
	return uc.channels.Delete(id)
}

func toChannelResponse(ch *entity.SalesChannel) *dto.ChannelResponse {
	if ch == nil {
		return nil
	}
	return &dto.ChannelResponse{
		ID:          ch.ID,
		ProductID:   ch.ProductID,
		ChannelType: ch.ChannelType,
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

		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}
