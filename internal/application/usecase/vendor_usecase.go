package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FilaVirtual-api/internal/application/dto"
	"github.com/jhoicas/FilaVirtual-api/internal/domain"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/repository"
)

// VendorUseCase aplica reglas de negocio para vendors (casos de uso).
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso con el puerto de persistencia.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create crea un nuevo vendor. Genera ID y timestamps.
func (uc *VendorUseCase) Create(in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	now := time.Now()
	vendor := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        in.Name,
		APIEndpoint: in.APIEndpoint,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	return entityToVendorResponse(vendor), nil
}

// GetByID obtiene un vendor por ID.
func (uc *VendorUseCase) GetByID(id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	return entityToVendorResponse(vendor), nil
}

// Update actualiza parcialmente un vendor. Retorna nil si no existe.
func (uc *VendorUseCase) Update(id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		vendor.Name = *in.Name
	}
	if in.APIEndpoint != nil {
		vendor.APIEndpoint = *in.APIEndpoint
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	return entityToVendorResponse(vendor), nil
}

// List lista vendors con paginación.
func (uc *VendorUseCase) List(limit, offset int) (*dto.VendorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *entityToVendorResponse(v))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		APIEndpoint: v.APIEndpoint,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
