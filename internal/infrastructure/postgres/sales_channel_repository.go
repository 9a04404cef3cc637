package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Multicanal-api/internal/domain"
	"github.com/jhoicas/Multicanal-api/internal/domain/entity"
	"github.com/jhoicas/Multicanal-api/internal/domain/repository"
)

var _ repository.SalesChannelRepository = (*SalesChannelRepo)(nil)

// SalesChannelRepo implementación del puerto SalesChannelRepository sobre PostgreSQL.
type SalesChannelRepo struct {
	q Querier
}

// NewSalesChannelRepository construye el adaptador de persistencia para canales.
func NewSalesChannelRepository(q Querier) *SalesChannelRepo {
	return &SalesChannelRepo{q: q}
}

const channelColumns = `
	id, product_id, channel_type, enabled,
	sale_price, commission_percent, shipping_cost, other_cost_value,
	fixed_cost_percent, other_cost_percent,
	packaging_cost_value, financial_cost_percent, marketing_cost_percent,
	rebate_value, rebate_percent, tacos_cost_percent, installment_percent,
	product_cost_fba, product_cost_ml_full, product_code,
	created_at, updated_at`

// Create persiste un canal de venta. Un producto solo puede tener una
// configuración por tipo de canal (unique product_id + channel_type).
func (r *SalesChannelRepo) Create(ch *entity.SalesChannel) error {
	query := `
		INSERT INTO sales_channels (` + channelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		ch.ID, ch.ProductID, ch.ChannelType, ch.Enabled,
		ch.SalePrice, ch.CommissionPercent, ch.ShippingCost, ch.OtherCostValue,
		ch.FixedCostPercent, ch.OtherCostPercent,
		ch.PackagingCostValue, ch.FinancialCostPercent, ch.MarketingCostPercent,
		ch.RebateValue, ch.RebatePercent, ch.TacosCostPercent, ch.InstallmentPercent,
		ch.ProductCostFBA, ch.ProductCostMLFull, ch.ProductCode,
		ch.CreatedAt, ch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales channel: %w", err)
	}
	return nil
}

// GetByID obtiene un canal por ID.
func (r *SalesChannelRepo) GetByID(id string) (*entity.SalesChannel, error) {
	query := `SELECT ` + channelColumns + ` FROM sales_channels WHERE id = $1`
	ch, err := scanChannel(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales channel: %w", err)
	}
	return ch, nil
}

// ListByProduct devuelve los canales del producto en orden de creación estable.
// El desempate best/worst del motor de pricing depende de este orden.
func (r *SalesChannelRepo) ListByProduct(productID string) ([]*entity.SalesChannel, error) {
	query := `SELECT ` + channelColumns + `
		FROM sales_channels WHERE product_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales channels: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesChannel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales channel: %w", err)
		}
		list = append(list, ch)
	}
	return list, rows.Err()
}

// Update actualiza la configuración de un canal.
func (r *SalesChannelRepo) Update(ch *entity.SalesChannel) error {
	query := `
		UPDATE sales_channels
		SET enabled = $2,
		    sale_price = $3, commission_percent = $4, shipping_cost = $5, other_cost_value = $6,
		    fixed_cost_percent = $7, other_cost_percent = $8,
		    packaging_cost_value = $9, financial_cost_percent = $10, marketing_cost_percent = $11,
		    rebate_value = $12, rebate_percent = $13, tacos_cost_percent = $14, installment_percent = $15,
		    product_cost_fba = $16, product_cost_ml_full = $17, product_code = $18,
		    updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ch.ID, ch.Enabled,
		ch.SalePrice, ch.CommissionPercent, ch.ShippingCost, ch.OtherCostValue,
		ch.FixedCostPercent, ch.OtherCostPercent,
		ch.PackagingCostValue, ch.FinancialCostPercent, ch.MarketingCostPercent,
		ch.RebateValue, ch.RebatePercent, ch.TacosCostPercent, ch.InstallmentPercent,
		ch.ProductCostFBA, ch.ProductCostMLFull, ch.ProductCode,
		ch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un canal por ID.
func (r *SalesChannelRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales_channels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanChannel(row pgx.Row) (*entity.SalesChannel, error) {
	var ch entity.SalesChannel
	err := row.Scan(
		&ch.ID, &ch.ProductID, &ch.ChannelType, &ch.Enabled,
		&ch.SalePrice, &ch.CommissionPercent, &ch.ShippingCost, &ch.OtherCostValue,
		&ch.FixedCostPercent, &ch.OtherCostPercent,
		&ch.PackagingCostValue, &ch.FinancialCostPercent, &ch.MarketingCostPercent,
		&ch.RebateValue, &ch.RebatePercent, &ch.TacosCostPercent, &ch.InstallmentPercent,
		&ch.ProductCostFBA, &ch.ProductCostMLFull, &ch.ProductCode,
		&ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}
