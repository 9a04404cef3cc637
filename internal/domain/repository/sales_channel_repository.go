package repository

import "github.com/jhoicas/Multicanal-api/internal/domain/entity"

// SalesChannelRepository puerto de persistencia de canales de venta.
type SalesChannelRepository interface {
	Create(channel *entity.SalesChannel) error
	GetByID(id string) (*entity.SalesChannel, error)
	// ListByProduct devuelve los canales del producto en orden de creación
	// estable: el desempate best/worst del motor depende de este orden.
	ListByProduct(productID string) ([]*entity.SalesChannel, error)
	Update(channel *entity.SalesChannel) error
	Delete(id string) error
}
