package usecase

import (
	"context"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// PackingSlipGenerator genera el PDF del albarán de envío de un pedido.
type PackingSlipGenerator interface {
	GeneratePackingSlip(ctx context.Context, order *entity.Order) ([]byte, error)
}

// OrderUseCase seguimiento de pedidos y envíos. Los pedidos los crea la tienda;
// el panel consulta, avanza el estado de envío y genera el albarán.
type OrderUseCase struct {
	repo repository.OrderRepository
	pdf  PackingSlipGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, pdf PackingSlipGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, pdf: pdf}
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order, true), nil
}

// List lista pedidos, opcionalmente filtrados por estado.
func (uc *OrderUseCase) List(status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, false))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus avanza el estado de envío validando la transición. El código de
// seguimiento solo se registra al pasar a Shipped.
func (uc *OrderUseCase) UpdateStatus(id int64, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	tracking := order.TrackingCode
	if in.Status == entity.OrderStatusShipped && in.TrackingCode != "" {
		tracking = in.TrackingCode
	}
	if err := uc.repo.UpdateStatus(id, in.Status, tracking); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.TrackingCode = tracking
	return toOrderResponse(order, true), nil
}

// PackingSlip genera el PDF del albarán del pedido.
func (uc *OrderUseCase) PackingSlip(ctx context.Context, id int64) ([]byte, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GeneratePackingSlip(ctx, order)
}

func toOrderResponse(o *entity.Order, withItems bool) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status,
		TrackingCode:    o.TrackingCode,
		Total:           o.Total,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if withItems {
		resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ID:          it.ID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
	}
	return resp
}
