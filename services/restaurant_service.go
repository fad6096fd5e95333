package services

import (
	"errors"
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/pkg/geo"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

type NearbyRestaurant struct {
	entity.Restaurant
	DistanceKm float64 `json:"distanceKm"`
}

// Nearby does a linear haversine scan over open restaurants. A
// restaurant is kept when its distance fits both the requested cap and
// its own service radius. Results come back ascending by distance.
// Fine at the current catalog size; a spatial index would be needed for
// a much larger one.
func (s *RestaurantService) Nearby(lat, lng, maxKm float64) ([]NearbyRestaurant, error) {
	rests, err := s.Repo.ListOpen()
	if err != nil {
		return nil, err
	}

	out := make([]NearbyRestaurant, 0, len(rests))
	for _, r := range rests {
		d := geo.HaversineKm(lat, lng, r.Latitude.InexactFloat64(), r.Longitude.InexactFloat64())
		if d <= math.Min(maxKm, r.ServiceRadiusKm.InexactFloat64()) {
			out = append(out, NearbyRestaurant{Restaurant: r, DistanceKm: geo.RoundKm(d)})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}
