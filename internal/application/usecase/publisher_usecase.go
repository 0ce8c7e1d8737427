package usecase

import (
	"time"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// PublisherUseCase casos de uso CRUD para editoriales.
type PublisherUseCase struct {
	repo repository.PublisherRepository
}

// NewPublisherUseCase construye el caso de uso.
func NewPublisherUseCase(repo repository.PublisherRepository) *PublisherUseCase {
	return &PublisherUseCase{repo: repo}
}

// Create crea una editorial.
func (uc *PublisherUseCase) Create(in dto.CreatePublisherRequest) (*dto.PublisherResponse, error) {
	now := time.Now()
	publisher := &entity.Publisher{
		Name:      in.Name,
		Email:     in.Email,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(publisher); err != nil {
		return nil, err
	}
	return toPublisherResponse(publisher), nil
}

// GetByID obtiene una editorial por ID.
func (uc *PublisherUseCase) GetByID(id int64) (*dto.PublisherResponse, error) {
	publisher, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		return nil, nil
	}
	return toPublisherResponse(publisher), nil
}

// List lista editoriales con paginación.
func (uc *PublisherUseCase) List(limit, offset int) (*dto.PublisherListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PublisherResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPublisherResponse(p))
	}
	return &dto.PublisherListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una editorial.
func (uc *PublisherUseCase) Update(id int64, in dto.UpdatePublisherRequest) (*dto.PublisherResponse, error) {
	publisher, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		publisher.Name = *in.Name
	}
	if in.Email != nil {
		publisher.Email = *in.Email
	}
	if in.Website != nil {
		publisher.Website = *in.Website
	}
	publisher.UpdatedAt = time.Now()
	if err := uc.repo.Update(publisher); err != nil {
		return nil, err
	}
	return toPublisherResponse(publisher), nil
}

// Delete elimina una editorial por ID.
func (uc *PublisherUseCase) Delete(id int64) error {
	publisher, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if publisher == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPublisherResponse(p *entity.Publisher) *dto.PublisherResponse {
	if p == nil {
		return nil
	}
	return &dto.PublisherResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Website:   p.Website,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
