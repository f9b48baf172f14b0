package rental

import (
	"sort"

	"gamerental/models"
)

// Placeholders shown when a rental references a deleted game or
// customer. References are never cascaded; they resolve here instead.
const (
	UnknownGame     = "Unknown game"
	UnknownCustomer = "Unknown customer"
)

// RentalView is a rental decorated with everything a screen needs: the
// resolved game and customer, the derived status and the formatted
// total.
type RentalView struct {
	models.Rental
	GameTitle     string
	GamePlatform  string
	CustomerName  string
	CustomerPhone string
	Status        models.RentalStatus
	TotalDisplay  string
}

// DashboardStats backs the dashboard cards.
type DashboardStats struct {
	ActiveRentals  int
	OverdueRentals int
	TotalCustomers int
	AvailableGames int
}

func (s *Service) buildViews(rentals []models.Rental) ([]RentalView, error) {
	games, err := s.ListGames()
	if err != nil {
		return nil, err
	}
	customers, err := s.ListCustomers()
	if err != nil {
		return nil, err
	}

	gameByID := make(map[string]models.Game, len(games))
	for _, g := range games {
		gameByID[g.ID] = g
	}
	customerByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	now := s.now()
	views := make([]RentalView, 0, len(rentals))
	for _, r := range rentals {
		v := RentalView{
			Rental:       r,
			GameTitle:    UnknownGame,
			CustomerName: UnknownCustomer,
			Status:       StatusAt(r, now),
			TotalDisplay: FormatCurrency(r.TotalAmount),
		}
		if g, ok := gameByID[r.GameID]; ok {
			v.GameTitle = g.Title
			v.GamePlatform = string(g.Platform)
		}
		if c, ok := customerByID[r.CustomerID]; ok {
			v.CustomerName = c.Name
			v.CustomerPhone = c.Phone
		}
		views = append(views, v)
	}
	return views, nil
}

// RentalViews lists every rental with references and status resolved,
// in creation order.
func (s *Service) RentalViews() ([]RentalView, error) {
	rentals, err := s.ListRentals()
	if err != nil {
		return nil, err
	}
	return s.buildViews(rentals)
}

// RecentActivity returns the latest rentals by rental date, newest
// first, capped at limit.
func (s *Service) RecentActivity(limit int) ([]RentalView, error) {
	rentals, err := s.ListRentals()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rentals, func(i, j int) bool {
		return rentals[i].RentalDate.After(rentals[j].RentalDate)
	})
	if len(rentals) > limit {
		rentals = rentals[:limit]
	}
	return s.buildViews(rentals)
}

// Dashboard computes the stat cards: derived active/overdue counts,
// customer count and total copies in stock.
func (s *Service) Dashboard() (DashboardStats, error) {
	rentals, err := s.ListRentals()
	if err != nil {
		return DashboardStats{}, err
	}
	games, err := s.ListGames()
	if err != nil {
		return DashboardStats{}, err
	}
	customers, err := s.ListCustomers()
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalCustomers: len(customers)}
	now := s.now()
	for _, r := range rentals {
		switch StatusAt(r, now) {
		case models.StatusActive:
			stats.ActiveRentals++
		case models.StatusOverdue:
			stats.OverdueRentals++
		}
	}
	for _, g := range games {
		stats.AvailableGames += g.StockQuantity
	}
	return stats, nil
}
