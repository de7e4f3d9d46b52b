package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
	"github.com/fortix/inventory-service/internal/repository"
)

type VendorStore interface {
	CreateVendor(ctx context.Context, vendor *domain.Vendor) error
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *domain.Vendor) error
	DeleteVendor(ctx context.Context, vendorID string) error
}

type VendorService struct {
	vendors VendorStore
	logger  *zap.Logger
}

func NewVendorService(vendors VendorStore, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendors: vendors,
		logger:  logger,
	}
}

func (s *VendorService) CreateVendor(ctx context.Context, req domain.VendorRequest) (*domain.Vendor, error) {
	now := time.Now()
	vendor := &domain.Vendor{
		VendorID:  uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		GSTNumber: req.GSTNumber,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.vendors.CreateVendor(ctx, vendor); err != nil {
		s.logger.Error("Failed to save vendor",
			zap.String("vendor_id", vendor.VendorID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Vendor created successfully",
		zap.String("vendor_id", vendor.VendorID),
		zap.String("name", vendor.Name))

	return vendor, nil
}

func (s *VendorService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetVendor(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.ListVendors(ctx)
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendorID string, req domain.VendorRequest) (*domain.Vendor, error) {
	existing, err := s.vendors.GetVendor(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	vendor := &domain.Vendor{
		VendorID:  vendorID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		GSTNumber: req.GSTNumber,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	if err := s.vendors.UpdateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, ErrVendorNotFound
		}
		s.logger.Error("Failed to update vendor",
			zap.String("vendor_id", vendorID),
			zap.Error(err))
		return nil, err
	}

	return vendor, nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := s.vendors.DeleteVendor(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return ErrVendorNotFound
		}
		s.logger.Error("Failed to delete vendor",
			zap.String("vendor_id", vendorID),
			zap.Error(err))
		return err
	}

	s.logger.Info("Vendor deleted", zap.String("vendor_id", vendorID))
	return nil
}
