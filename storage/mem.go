package storage

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/dripitout/dripitout-api/models"
	"gorm.io/gorm"
)

var (
	_ Storage = (*GormStorage)(nil)
	_ Storage = (*MemStorage)(nil)
)

// MemStorage keeps every table in a map keyed by an incrementing id. It
// backs tests and local development without a database.
type MemStorage struct {
	mu sync.Mutex

	users        map[int]models.User
	products     map[int]models.Product
	reviews      map[int]models.Review
	orders       map[int]models.Order
	orderItems   map[int]models.OrderItem
	bookings     map[int]models.TailorBooking
	appointments map[int]models.OnlineAppointment
	contacts     map[int]models.ContactSupport

	nextUserID        int
	nextProductID     int
	nextReviewID      int
	nextOrderID       int
	nextOrderItemID   int
	nextBookingID     int
	nextAppointmentID int
	nextContactID     int
}

func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:        make(map[int]models.User),
		products:     make(map[int]models.Product),
		reviews:      make(map[int]models.Review),
		orders:       make(map[int]models.Order),
		orderItems:   make(map[int]models.OrderItem),
		bookings:     make(map[int]models.TailorBooking),
		appointments: make(map[int]models.OnlineAppointment),
		contacts:     make(map[int]models.ContactSupport),

		nextUserID:        1,
		nextProductID:     1,
		nextReviewID:      1,
		nextOrderID:       1,
		nextOrderItemID:   1,
		nextBookingID:     1,
		nextAppointmentID: 1,
		nextContactID:     1,
	}
	for _, product := range SampleProducts() {
		s.CreateProduct(&product)
	}
	return s
}

func stamp(model *gorm.Model, id int) {
	model.ID = uint(id)
	model.CreatedAt = time.Now()
	model.UpdatedAt = model.CreatedAt
}

// Users

func (s *MemStorage) GetUser(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&user.Model, s.nextUserID)
	s.nextUserID++
	s.users[int(user.ID)] = *user
	return nil
}

func (s *MemStorage) UpdateUserProfile(id int, update models.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return &user, nil
}

// Products

func (s *MemStorage) GetAllProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, 0, len(s.products))
	for id := 1; id < s.nextProductID; id++ {
		if product, ok := s.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemStorage) GetProductsByCategory(category string) ([]models.Product, error) {
	all, _ := s.GetAllProducts()
	products := make([]models.Product, 0)
	for _, product := range all {
		if product.Category == category {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemStorage) GetProductsByCollection(collection string) ([]models.Product, error) {
	all, _ := s.GetAllProducts()
	products := make([]models.Product, 0)
	for _, product := range all {
		if product.Collection == collection {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemStorage) GetProduct(id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemStorage) CreateProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&product.Model, s.nextProductID)
	s.nextProductID++
	s.products[int(product.ID)] = *product
	return nil
}

func (s *MemStorage) UpdateProduct(id int, update *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product.Name = update.Name
	product.Description = update.Description
	product.Price = update.Price
	product.Category = update.Category
	product.Collection = update.Collection
	product.InStock = update.InStock
	if update.ImageUrl != "" {
		product.ImageUrl = update.ImageUrl
	}
	product.UpdatedAt = time.Now()
	s.products[id] = product
	return &product, nil
}

func (s *MemStorage) SetProductImage(id int, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.ImageUrl = url
	s.products[id] = product
	return nil
}

// Reviews

func (s *MemStorage) GetReviews(productID int) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := make([]models.Review, 0)
	for id := 1; id < s.nextReviewID; id++ {
		if review, ok := s.reviews[id]; ok && review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (s *MemStorage) CreateReview(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&review.Model, s.nextReviewID)
	s.nextReviewID++
	s.reviews[int(review.ID)] = *review
	return nil
}

// Orders

func (s *MemStorage) GetOrders(userID int) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, 0)
	for id := 1; id < s.nextOrderID; id++ {
		if order, ok := s.orders[id]; ok && order.UserID == userID {
			order.OrderItems = s.itemsForLocked(id)
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *MemStorage) GetOrder(id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *MemStorage) CreateOrderWithItems(order *models.Order, items []models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&order.Model, s.nextOrderID)
	s.nextOrderID++
	for i := range items {
		items[i].OrderID = int(order.ID)
		stamp(&items[i].Model, s.nextOrderItemID)
		s.nextOrderItemID++
		s.orderItems[int(items[i].ID)] = items[i]
	}
	order.OrderItems = items
	saved := *order
	saved.OrderItems = nil
	s.orders[int(order.ID)] = saved
	return nil
}

func (s *MemStorage) GetOrderItems(orderID int) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsForLocked(orderID), nil
}

func (s *MemStorage) itemsForLocked(orderID int) []models.OrderItem {
	items := make([]models.OrderItem, 0)
	for id := 1; id < s.nextOrderItemID; id++ {
		if item, ok := s.orderItems[id]; ok && item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items
}

func (s *MemStorage) UpdateOrderStatus(id int, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	s.orders[id] = order
	return &order, nil
}

// Tailor bookings

func (s *MemStorage) GetTailorBookings(userID int) ([]models.TailorBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]models.TailorBooking, 0)
	for id := 1; id < s.nextBookingID; id++ {
		if booking, ok := s.bookings[id]; ok && booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *MemStorage) GetTailorBooking(id int) (*models.TailorBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (s *MemStorage) CreateTailorBooking(booking *models.TailorBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&booking.Model, s.nextBookingID)
	s.nextBookingID++
	s.bookings[int(booking.ID)] = *booking
	return nil
}

func (s *MemStorage) UpdateTailorBookingStatus(id int, status string) (*models.TailorBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	s.bookings[id] = booking
	return &booking, nil
}

// Online appointments

func (s *MemStorage) GetOnlineAppointments(userID int) ([]models.OnlineAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments := make([]models.OnlineAppointment, 0)
	for id := 1; id < s.nextAppointmentID; id++ {
		if appointment, ok := s.appointments[id]; ok && appointment.UserID == userID {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (s *MemStorage) GetOnlineAppointment(id int) (*models.OnlineAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

func (s *MemStorage) CreateOnlineAppointment(appointment *models.OnlineAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&appointment.Model, s.nextAppointmentID)
	s.nextAppointmentID++
	s.appointments[int(appointment.ID)] = *appointment
	return nil
}

func (s *MemStorage) UpdateOnlineAppointmentStatus(id int, status string) (*models.OnlineAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	s.appointments[id] = appointment
	return &appointment, nil
}

func (s *MemStorage) SetAppointmentMeetingLink(id int, link string) (*models.OnlineAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	appointment.MeetingLink = link
	appointment.UpdatedAt = time.Now()
	s.appointments[id] = appointment
	return &appointment, nil
}

func (s *MemStorage) SetAppointmentReferenceImages(id int, urls []string) (*models.OnlineAppointment, error) {
	payload, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	appointment.ReferenceImages = payload
	appointment.UpdatedAt = time.Now()
	s.appointments[id] = appointment
	return &appointment, nil
}

// Contact support

func (s *MemStorage) CreateContactSupport(contact *models.ContactSupport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&contact.Model, s.nextContactID)
	s.nextContactID++
	s.contacts[int(contact.ID)] = *contact
	return nil
}
