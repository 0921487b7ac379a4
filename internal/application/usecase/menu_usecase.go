package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

// MenuUseCase administra el menú de un vendor.
type MenuUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuUseCase construye el caso de uso con el puerto de persistencia.
func NewMenuUseCase(repo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create agrega un plato al menú del vendor. Nace activo.
func (uc *MenuUseCase) Create(vendorID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:              uuid.New().String(),
		VendorID:        vendorID,
		Name:            in.Name,
		Price:           in.Price,
		PrepTimeMinutes: in.PrepTimeMinutes,
		IsSpecial:       in.IsSpecial,
		IsBestseller:    in.IsBestseller,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return entityToMenuItemResponse(item), nil
}

// List lista el menú del vendor. onlyActive filtra platos desactivados.
func (uc *MenuUseCase) List(vendorID string, onlyActive bool, limit, offset int) (*dto.MenuListResponse, error) {
	list, err := uc.repo.ListByVendor(vendorID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *entityToMenuItemResponse(it))
	}
	return &dto.MenuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica un plato. El plato debe pertenecer al vendor del token.
func (uc *MenuUseCase) Update(vendorID, itemID string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.VendorID != vendorID {
		return nil, domain.ErrForbidden
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item.Name = in.Name
	item.Price = in.Price
	item.PrepTimeMinutes = in.PrepTimeMinutes
	item.IsSpecial = in.IsSpecial
	item.IsBestseller = in.IsBestseller
	item.Active = in.Active
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return entityToMenuItemResponse(item), nil
}

// Delete elimina un plato del menú del vendor.
func (uc *MenuUseCase) Delete(vendorID, itemID string) error {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.VendorID != vendorID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(itemID)
}

func entityToMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	if it == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:              it.ID,
		VendorID:        it.VendorID,
		Name:            it.Name,
		Price:           it.Price,
		PrepTimeMinutes: it.PrepTimeMinutes,
		IsSpecial:       it.IsSpecial,
		IsBestseller:    it.IsBestseller,
		Active:          it.Active,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}
