package storage

import (
	"encoding/json"
	"errors"

	"github.com/dripitout/dripitout-api/models"
	"gorm.io/gorm"
)

// GormStorage is the MySQL-backed Storage implementation.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *GormStorage) GetUser(id int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UpdateUserProfile merges the provided fields into the stored profile;
// omitted fields keep their current values.
func (s *GormStorage) UpdateUserProfile(id int, update models.ProfileUpdate) (*models.User, error) {
	fields := map[string]any{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if len(fields) == 0 {
		return s.GetUser(id)
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUser(id)
}

// Products

func (s *GormStorage) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetProductsByCollection(collection string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("collection = ?", collection).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetProduct(id int) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *GormStorage) CreateProduct(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *GormStorage) UpdateProduct(id int, update *models.Product) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, translate(err)
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
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStorage) SetProductImage(id int, url string) error {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reviews

func (s *GormStorage) GetReviews(productID int) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStorage) CreateReview(review *models.Review) error {
	return s.db.Create(review).Error
}

// Orders

func (s *GormStorage) GetOrders(userID int) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderItems").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStorage) GetOrder(id int) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// CreateOrderWithItems writes the order and its lines in one transaction
// so a failed item insert never leaves a partial order behind.
func (s *GormStorage) CreateOrderWithItems(order *models.Order, items []models.OrderItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = int(order.ID)
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.OrderItems = items
		return nil
	})
}

func (s *GormStorage) GetOrderItems(orderID int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStorage) UpdateOrderStatus(id int, status string) (*models.Order, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}

// Tailor bookings

func (s *GormStorage) GetTailorBookings(userID int) ([]models.TailorBooking, error) {
	var bookings []models.TailorBooking
	if err := s.db.Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStorage) GetTailorBooking(id int) (*models.TailorBooking, error) {
	var booking models.TailorBooking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (s *GormStorage) CreateTailorBooking(booking *models.TailorBooking) error {
	return s.db.Create(booking).Error
}

func (s *GormStorage) UpdateTailorBookingStatus(id int, status string) (*models.TailorBooking, error) {
	result := s.db.Model(&models.TailorBooking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTailorBooking(id)
}

// Online appointments

func (s *GormStorage) GetOnlineAppointments(userID int) ([]models.OnlineAppointment, error) {
	var appointments []models.OnlineAppointment
	if err := s.db.Where("user_id = ?", userID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *GormStorage) GetOnlineAppointment(id int) (*models.OnlineAppointment, error) {
	var appointment models.OnlineAppointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (s *GormStorage) CreateOnlineAppointment(appointment *models.OnlineAppointment) error {
	return s.db.Create(appointment).Error
}

func (s *GormStorage) UpdateOnlineAppointmentStatus(id int, status string) (*models.OnlineAppointment, error) {
	result := s.db.Model(&models.OnlineAppointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOnlineAppointment(id)
}

func (s *GormStorage) SetAppointmentMeetingLink(id int, link string) (*models.OnlineAppointment, error) {
	result := s.db.Model(&models.OnlineAppointment{}).Where("id = ?", id).Update("meeting_link", link)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOnlineAppointment(id)
}

func (s *GormStorage) SetAppointmentReferenceImages(id int, urls []string) (*models.OnlineAppointment, error) {
	payload, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	result := s.db.Model(&models.OnlineAppointment{}).Where("id = ?", id).Update("reference_images", payload)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOnlineAppointment(id)
}

// Contact support

func (s *GormStorage) CreateContactSupport(contact *models.ContactSupport) error {
	return s.db.Create(contact).Error
}
