package donation

import (
	"FoodForAll-Backend/domain"
	"FoodForAll-Backend/entities"
	"FoodForAll-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Presentation heuristics carried from the dashboard: one donated
	// unit feeds roughly one meal, one kg of rescued food avoids about
	// 2.5 kg of CO2. Placeholder figures, not derived units.
	CO2PerQuantityUnit = 2.5

	expiringSoonWindow = 24 * time.Hour
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error)
		GetDonationByID(ctx context.Context, id string, userID string) (*domain.Donation, error)
		GetMyDonations(ctx context.Context, userID string) ([]*domain.Donation, error)
		GetFilteredDonations(ctx context.Context, query domain.ListingQuery) ([]*domain.Donation, error)
		GetRecentDonations(ctx context.Context) ([]*domain.RecentDonation, error)
		GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
		GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if len(req.Photos) > domain.MaxDonationPhotos {
		return nil, domain.ErrTooManyPhotos
	}

	// Prepared date defaults to submission time when the donor leaves it out
	preparedDate := time.Now()
	if req.PreparedDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PreparedDate)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", req.PreparedDate)
			if err != nil {
				return nil, err
			}
		}
		preparedDate = parsed
	}

	expiryDate := ExpiryAt(preparedDate, req.ExpiryDays, req.ExpiryHours)

	donationID := uuid.New()

	photos := make([]string, 0, len(req.Photos))
	for i, photo := range req.Photos {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s-%d", donationID.String(), i),
			photo,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		photos = append(photos, s.s3.GetPublicLinkKey(objectKey))
	}

	donation := &entities.Donation{
		ID:          donationID,
		UserID:      userUUID,
		FoodName:    req.FoodName,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,

		PreparedDate: preparedDate,
		ExpiryDays:   req.ExpiryDays,
		ExpiryHours:  req.ExpiryHours,
		ExpiryDate:   &expiryDate,

		ContainsAllergens:  req.ContainsAllergens,
		DietaryPreferences: req.DietaryPreferences,

		PickupAddress:     req.PickupAddress,
		PickupFrom:        req.PickupFrom,
		PickupTo:          req.PickupTo,
		PickupDays:        req.PickupDays,
		ContactPreference: req.ContactPreference,
		Notes:             req.Notes,

		Photos: photos,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDomainDonation(donation, time.Now()), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	return toDomainDonation(donation, time.Now()), nil
}

func (s *donationService) GetMyDonations(ctx context.Context, userID string) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetUserDonations(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDomainDonation(donation, now))
	}
	return result, nil
}

func (s *donationService) GetFilteredDonations(ctx context.Context, query domain.ListingQuery) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetFilteredDonations(ctx, query.Categories, query.SortKey)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		if !HasAllPreferences(donation.DietaryPreferences, query.Preferences) {
			continue
		}
		result = append(result, toDomainDonation(donation, now))
	}

	SortListings(result, query.SortKey)
	return result, nil
}

func (s *donationService) GetRecentDonations(ctx context.Context) ([]*domain.RecentDonation, error) {
	donations, err := s.donationRepository.GetRecentDonations(ctx, 3)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RecentDonation, 0, len(donations))
	for _, donation := range donations {
		recent := &domain.RecentDonation{
			ID:          donation.ID.String(),
			FoodName:    donation.FoodName,
			Category:    donation.Category,
			Description: donation.Description,
			Photos:      donation.Photos,
		}
		if donation.User != nil {
			recent.DonatedBy = donation.User.Name
		}
		result = append(result, recent)
	}
	return result, nil
}

func (s *donationService) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	totalDonations, err := s.donationRepository.CountDonations(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.donationRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PlatformStats{
		TotalDonations: totalDonations,
		TotalUsers:     totalUsers,
	}, nil
}

func (s *donationService) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	donations, err := s.donationRepository.GetUserDonations(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &domain.DashboardStats{TotalDonations: len(donations)}
	for _, donation := range donations {
		stats.TotalQuantity += donation.Quantity

		if IsExpired(donation.PreparedDate, donation.ExpiryDays, donation.ExpiryHours, now) {
			stats.ExpiredDonations++
			continue
		}
		stats.ActiveDonations++

		expiry := ExpiryAt(donation.PreparedDate, donation.ExpiryDays, donation.ExpiryHours)
		if expiry.Sub(now) <= expiringSoonWindow {
			stats.ExpiringSoon++
		}
	}

	stats.EstimatedMeals = int(stats.TotalQuantity)
	stats.EstimatedCO2Saved = stats.TotalQuantity * CO2PerQuantityUnit

	return stats, nil
}

func toDomainDonation(donation *entities.Donation, now time.Time) *domain.Donation {
	result := &domain.Donation{
		ID:          donation.ID.String(),
		UserID:      donation.UserID.String(),
		FoodName:    donation.FoodName,
		Category:    donation.Category,
		Description: donation.Description,
		Quantity:    donation.Quantity,
		Unit:        donation.Unit,

		PreparedDate: donation.PreparedDate,
		ExpiryDays:   donation.ExpiryDays,
		ExpiryHours:  donation.ExpiryHours,
		ExpiryDate:   donation.ExpiryDate,
		TimeLeft:     TimeLeft(donation.PreparedDate, donation.ExpiryDays, donation.ExpiryHours, now),
		Expired:      IsExpired(donation.PreparedDate, donation.ExpiryDays, donation.ExpiryHours, now),

		ContainsAllergens:  donation.ContainsAllergens,
		DietaryPreferences: donation.DietaryPreferences,

		PickupAddress:     donation.PickupAddress,
		PickupFrom:        donation.PickupFrom,
		PickupTo:          donation.PickupTo,
		PickupDays:        donation.PickupDays,
		ContactPreference: donation.ContactPreference,
		Notes:             donation.Notes,

		Photos: donation.Photos,

		CreatedAt: donation.CreatedAt,
		UpdatedAt: donation.UpdatedAt,
	}

	if donation.User != nil {
		result.DonorName = donation.User.Name
	}

	return result
}
