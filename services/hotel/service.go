package hotel

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	hotelRepo "staybook/database/repository/hotel"
	"staybook/models"
	"staybook/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImages is the upload cap per hotel.
const MaxImages = 6

// HotelService manages owner-facing hotel records and public reads.
type HotelService interface {
	Create(ctx context.Context, hotel *models.Hotel, images []*multipart.FileHeader) (*models.Hotel, error)
	Update(ctx context.Context, hotel *models.Hotel, images []*multipart.FileHeader) (*models.Hotel, error)
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	GetOwned(ctx context.Context, id, userID string) (*models.Hotel, error)
	MyHotels(ctx context.Context, userID string) ([]models.Hotel, error)
	All(ctx context.Context) ([]models.Hotel, error)
}

// DefaultHotelService implements HotelService.
type DefaultHotelService struct {
	Repo    hotelRepo.HotelRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

// Create validates and persists a new hotel owned by the requesting user.
func (s *DefaultHotelService) Create(ctx context.Context, hotel *models.Hotel, images []*multipart.FileHeader) (*models.Hotel, error) {
	if err := validateHotel(hotel); err != nil {
		return nil, err
	}

	imageURLs, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	hotel.ID = uuid.New().String()
	hotel.ImageURLs = imageURLs
	hotel.LastUpdated = time.Now()
	hotel.Bookings = []models.Booking{}

	if err := s.Repo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	s.Logger.Info("hotel created", zap.String("hotelId", hotel.ID), zap.String("ownerId", hotel.UserID))
	return hotel, nil
}

// Update replaces the hotel's attributes, scoped to the owner. Newly uploaded
// images are prepended to whatever URLs the caller chose to keep; images the
// caller dropped are removed from storage. The booking ledger is untouched.
func (s *DefaultHotelService) Update(ctx context.Context, hotel *models.Hotel, images []*multipart.FileHeader) (*models.Hotel, error) {
	if err := validateHotel(hotel); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByIDAndOwner(ctx, hotel.ID, hotel.UserID)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}
	hotel.ImageURLs = append(uploaded, hotel.ImageURLs...)
	hotel.LastUpdated = time.Now()

	updated, err := s.Repo.Update(ctx, hotel)
	if err != nil {
		return nil, err
	}

	s.deleteDroppedImages(ctx, existing.ImageURLs, updated.ImageURLs)
	s.Logger.Info("hotel updated", zap.String("hotelId", updated.ID))
	return updated, nil
}

// deleteDroppedImages removes from storage every image that was on the hotel
// before the update but is absent after it. Best effort: the document update
// already succeeded, so a failed delete only leaks an orphan file.
func (s *DefaultHotelService) deleteDroppedImages(ctx context.Context, before, after []string) {
	kept := make(map[string]bool, len(after))
	for _, u := range after {
		kept[u] = true
	}
	for _, u := range before {
		if kept[u] {
			continue
		}
		publicID, err := storage.PublicIDFromURL(u)
		if err != nil {
			s.Logger.Warn("cannot resolve public id for removed image", zap.String("url", u), zap.Error(err))
			continue
		}
		if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
			s.Logger.Warn("failed to delete removed image", zap.String("publicId", publicID), zap.Error(err))
		}
	}
}

// GetByID fetches a hotel for public display.
func (s *DefaultHotelService) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetOwned fetches a hotel only when the requesting user owns it.
func (s *DefaultHotelService) GetOwned(ctx context.Context, id, userID string) (*models.Hotel, error) {
	return s.Repo.GetByIDAndOwner(ctx, id, userID)
}

// MyHotels lists the user's hotels, full booking ledgers included.
func (s *DefaultHotelService) MyHotels(ctx context.Context, userID string) ([]models.Hotel, error) {
	return s.Repo.FindByOwner(ctx, userID)
}

// All lists every hotel, most recently updated first.
func (s *DefaultHotelService) All(ctx context.Context) ([]models.Hotel, error) {
	return s.Repo.AllByLastUpdated(ctx)
}

func (s *DefaultHotelService) uploadImages(ctx context.Context, images []*multipart.FileHeader) ([]string, error) {
	if len(images) > MaxImages {
		return nil, &models.ValidationError{Field: "imageFiles", Reason: fmt.Sprintf("at most %d images allowed", MaxImages)}
	}

	urls := make([]string, 0, len(images))
	for _, header := range images {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", header.Filename, err)
		}
		url, err := s.Storage.UploadImage(ctx, file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %s: %w", header.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func validateHotel(h *models.Hotel) error {
	switch {
	case h.Name == "":
		return &models.ValidationError{Field: "name", Reason: "required"}
	case h.City == "":
		return &models.ValidationError{Field: "city", Reason: "required"}
	case h.Country == "":
		return &models.ValidationError{Field: "country", Reason: "required"}
	case h.Description == "":
		return &models.ValidationError{Field: "description", Reason: "required"}
	case h.Type == "":
		return &models.ValidationError{Field: "type", Reason: "required"}
	case h.PricePerNight <= 0:
		return &models.ValidationError{Field: "pricePerNight", Reason: "must be greater than zero"}
	case h.StarRating < 1 || h.StarRating > 5:
		return &models.ValidationError{Field: "starRating", Reason: "must be between 1 and 5"}
	case len(h.Facilities) == 0:
		return &models.ValidationError{Field: "facilities", Reason: "at least one facility is required"}
	}
	return nil
}
