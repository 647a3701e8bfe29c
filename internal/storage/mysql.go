package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"eventify/internal/config"
	"eventify/internal/logger"
	"eventify/internal/models"
)

type MySQLStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewMySQLStore(cfg config.DatabaseConfig, log *logger.Logger) (*MySQLStore, error) {
	log.LogDatabase("CONNECT", "mysql", fmt.Sprintf("Connecting to MySQL at %s:%s", cfg.Host, cfg.Port))

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Error("DATABASE", "Failed to open MySQL connection: "+err.Error())
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection
	if err := db.Ping(); err != nil {
		log.Error("DATABASE", "Failed to ping MySQL: "+err.Error())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &MySQLStore{
		db:  db,
		log: log,
	}

	if err := store.initTables(); err != nil {
		log.Error("DATABASE", "Failed to initialize tables: "+err.Error())
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.LogDatabase("SUCCESS", "mysql", "MySQL connection established and tables initialized")
	return store, nil
}

func (s *MySQLStore) initTables() error {
	s.log.LogDatabase("MIGRATE", "mysql", "Creating tables if not exist")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGINT AUTO_INCREMENT PRIMARY KEY,
            email VARCHAR(255) NOT NULL UNIQUE,
            name VARCHAR(255) NOT NULL,
            hashed_password VARCHAR(255) NOT NULL,
            role VARCHAR(20) NOT NULL DEFAULT 'user',
            is_active BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            INDEX idx_users_email (email)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS categories (
            id BIGINT AUTO_INCREMENT PRIMARY KEY,
            name VARCHAR(255) NOT NULL UNIQUE,
            color VARCHAR(50) NOT NULL DEFAULT '',
            icon VARCHAR(255) NULL
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS events (
            id BIGINT AUTO_INCREMENT PRIMARY KEY,
            title VARCHAR(255) NOT NULL,
            description TEXT,
            start_date DATETIME NOT NULL,
            end_date DATETIME NOT NULL,
            location VARCHAR(255) NOT NULL DEFAULT '',
            capacity INT NULL,
            price DECIMAL(10,2) NOT NULL DEFAULT 0,
            is_published BOOLEAN NOT NULL DEFAULT TRUE,
            organizer_id BIGINT NOT NULL,
            category_id BIGINT NOT NULL,
            INDEX idx_events_category (category_id),
            INDEX idx_events_organizer (organizer_id),
            INDEX idx_events_start (start_date),
            CONSTRAINT fk_events_organizer FOREIGN KEY (organizer_id) REFERENCES users(id),
            CONSTRAINT fk_events_category FOREIGN KEY (category_id) REFERENCES categories(id)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS orders (
            id BIGINT AUTO_INCREMENT PRIMARY KEY,
            user_id BIGINT NOT NULL,
            total DECIMAL(10,2) NOT NULL,
            status VARCHAR(50) NOT NULL DEFAULT 'completed',
            customer_info JSON NULL,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            INDEX idx_orders_user (user_id),
            CONSTRAINT fk_orders_user FOREIGN KEY (user_id) REFERENCES users(id)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGINT AUTO_INCREMENT PRIMARY KEY,
            order_id BIGINT NOT NULL,
            event_id BIGINT NOT NULL,
            quantity INT NOT NULL,
            price DECIMAL(10,2) NOT NULL,
            INDEX idx_order_items_order (order_id),
            INDEX idx_order_items_event (event_id),
            CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	s.log.LogDatabase("SUCCESS", "mysql", "All tables ready")
	return nil
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// ---- Users ----

func (s *MySQLStore) CreateUser(user *models.User) error {
	s.log.LogDatabase("INSERT", "users", fmt.Sprintf("Creating user %s", user.Email))

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `
    INSERT INTO users (email, name, hashed_password, role, is_active, created_at)
    VALUES (?, ?, ?, ?, ?, ?)
    `

	res, err := s.db.Exec(query,
		user.Email, user.Name, user.HashedPassword, user.Role, user.IsActive, user.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			s.log.LogDatabase("CONFLICT", "users", fmt.Sprintf("Email %s already registered", user.Email))
			return ErrDuplicateEmail
		}
		s.log.Error("DATABASE", fmt.Sprintf("Failed to create user %s: %s", user.Email, err.Error()))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	s.log.LogDatabase("SUCCESS", "users", fmt.Sprintf("User %d created", user.ID))
	return nil
}

const userColumns = `id, email, name, hashed_password, role, is_active, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.HashedPassword,
		&user.Role, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *MySQLStore) GetUserByID(id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(s.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *MySQLStore) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(s.db.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *MySQLStore) ListUsers(offset, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *MySQLStore) UpdateUser(user *models.User) error {
	s.log.LogDatabase("UPDATE", "users", fmt.Sprintf("Updating user %d", user.ID))

	query := `
    UPDATE users SET email = ?, name = ?, hashed_password = ?, role = ?, is_active = ?
    WHERE id = ?
    `

	res, err := s.db.Exec(query,
		user.Email, user.Name, user.HashedPassword, user.Role, user.IsActive, user.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean a no-op update, so confirm existence.
		if _, err := s.GetUserByID(user.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) DeleteUser(id int64) error {
	s.log.LogDatabase("DELETE", "users", fmt.Sprintf("Deleting user %d", id))

	res, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ---- Categories ----

func (s *MySQLStore) CreateCategory(category *models.Category) error {
	s.log.LogDatabase("INSERT", "categories", fmt.Sprintf("Creating category %s", category.Name))

	res, err := s.db.Exec(
		`INSERT INTO categories (name, color, icon) VALUES (?, ?, ?)`,
		category.Name, category.Color, nullString(category.Icon),
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateCategory
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}
	category.ID = id
	return nil
}

func (s *MySQLStore) GetCategory(id int64) (*models.Category, error) {
	category := &models.Category{}
	var icon sql.NullString

	err := s.db.QueryRow(`SELECT id, name, color, icon FROM categories WHERE id = ?`, id).
		Scan(&category.ID, &category.Name, &category.Color, &icon)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	category.Icon = icon.String
	return category, nil
}

func (s *MySQLStore) ListCategories(offset, limit int) ([]*models.Category, error) {
	rows, err := s.db.Query(
		`SELECT id, name, color, icon FROM categories ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		var icon sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &category.Color, &icon); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		category.Icon = icon.String
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *MySQLStore) UpdateCategory(category *models.Category) error {
	res, err := s.db.Exec(
		`UPDATE categories SET name = ?, color = ?, icon = ? WHERE id = ?`,
		category.Name, category.Color, nullString(category.Icon), category.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateCategory
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.GetCategory(category.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) DeleteCategory(id int64) error {
	res, err := s.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *MySQLStore) CountEventsByCategory(categoryID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events WHERE category_id = ?`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// ---- Events ----

const eventColumns = `id, title, description, start_date, end_date, location, capacity, price, is_published, organizer_id, category_id`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.StartDate, &event.EndDate,
		&event.Location, &event.Capacity, &event.Price, &event.IsPublished,
		&event.OrganizerID, &event.CategoryID,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *MySQLStore) CreateEvent(event *models.Event) error {
	s.log.LogDatabase("INSERT", "events", fmt.Sprintf("Creating event %q", event.Title))

	query := `
    INSERT INTO events (title, description, start_date, end_date, location, capacity, price, is_published, organizer_id, category_id)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	res, err := s.db.Exec(query,
		event.Title, event.Description, event.StartDate, event.EndDate, event.Location,
		event.Capacity, event.Price, event.IsPublished, event.OrganizerID, event.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read event id: %w", err)
	}
	event.ID = id
	return nil
}

func (s *MySQLStore) GetEvent(id int64) (*models.Event, error) {
	event, err := scanEvent(s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *MySQLStore) ListEvents(filter models.EventFilter) ([]*models.Event, error) {
	var conds []string
	var args []any

	if filter.CategoryID != 0 {
		conds = append(conds, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.OrganizerID != 0 {
		conds = append(conds, "organizer_id = ?")
		args = append(args, filter.OrganizerID)
	}
	if !filter.StartAfter.IsZero() {
		conds = append(conds, "start_date >= ?")
		args = append(args, filter.StartAfter)
	}
	if !filter.EndBefore.IsZero() {
		conds = append(conds, "end_date <= ?")
		args = append(args, filter.EndBefore)
	}
	if filter.PriceMin != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *filter.PriceMax)
	}
	if filter.Search != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ? OR location LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_date LIMIT ? OFFSET ?`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit, filter.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *MySQLStore) UpdateEvent(event *models.Event) error {
	s.log.LogDatabase("UPDATE", "events", fmt.Sprintf("Updating event %d", event.ID))

	query := `
    UPDATE events SET title = ?, description = ?, start_date = ?, end_date = ?, location = ?,
        capacity = ?, price = ?, is_published = ?, category_id = ?
    WHERE id = ?
    `

	res, err := s.db.Exec(query,
		event.Title, event.Description, event.StartDate, event.EndDate, event.Location,
		event.Capacity, event.Price, event.IsPublished, event.CategoryID, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.GetEvent(event.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) DeleteEvent(id int64) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ---- Orders ----

// CreateOrder writes the order row and all item rows in one transaction.
// Every item's event must exist at insert time; the first missing event
// rolls back the whole order so readers never observe a partial item set.
func (s *MySQLStore) CreateOrder(order *models.Order, items []*models.OrderItem) error {
	s.log.LogDatabase("INSERT", "orders", fmt.Sprintf("Creating order for user %d with %d items", order.UserID, len(items)))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}

	res, err := tx.Exec(
		`INSERT INTO orders (user_id, total, status, customer_info, created_at) VALUES (?, ?, ?, ?, ?)`,
		order.UserID, order.Total, order.Status, order.CustomerInfo, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read order id: %w", err)
	}
	order.ID = orderID

	for _, item := range items {
		var eventID int64
		err := tx.QueryRow(`SELECT id FROM events WHERE id = ?`, item.EventID).Scan(&eventID)
		if err != nil {
			if err == sql.ErrNoRows {
				s.log.LogDatabase("ROLLBACK", "orders", fmt.Sprintf("Event %d not found, aborting order", item.EventID))
				return fmt.Errorf("event %d: %w", item.EventID, ErrEventNotFound)
			}
			return fmt.Errorf("failed to check event %d: %w", item.EventID, err)
		}

		itemRes, err := tx.Exec(
			`INSERT INTO order_items (order_id, event_id, quantity, price) VALUES (?, ?, ?, ?)`,
			orderID, item.EventID, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		itemID, err := itemRes.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read order item id: %w", err)
		}
		item.ID = itemID
		item.OrderID = orderID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	order.Items = items
	s.log.LogDatabase("SUCCESS", "orders", fmt.Sprintf("Order %d committed with %d items", order.ID, len(items)))
	return nil
}

const orderColumns = `id, user_id, total, status, customer_info, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID, &order.UserID, &order.Total, &order.Status,
		&order.CustomerInfo, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *MySQLStore) GetOrder(id int64) (*models.Order, error) {
	order, err := scanOrder(s.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := s.listOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *MySQLStore) ListOrdersByUser(userID int64) ([]*models.Order, error) {
	rows, err := s.db.Query(
		`SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		items, err := s.listOrderItems(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return orders, nil
}

func (s *MySQLStore) listOrderItems(orderID int64) ([]*models.OrderItem, error) {
	rows, err := s.db.Query(
		`SELECT id, order_id, event_id, quantity, price FROM order_items WHERE order_id = ? ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.EventID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *MySQLStore) GetOrderItem(id int64) (*models.OrderItem, error) {
	item := &models.OrderItem{}
	err := s.db.QueryRow(
		`SELECT id, order_id, event_id, quantity, price FROM order_items WHERE id = ?`, id,
	).Scan(&item.ID, &item.OrderID, &item.EventID, &item.Quantity, &item.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("failed to get order item: %w", err)
	}
	return item, nil
}

func (s *MySQLStore) DeleteOrderItem(id int64) error {
	s.log.LogDatabase("DELETE", "order_items", fmt.Sprintf("Deleting order item %d", id))

	res, err := s.db.Exec(`DELETE FROM order_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderItemNotFound
	}
	return nil
}

// ---- Admin ----

func (s *MySQLStore) Stats() (*models.Stats, error) {
	stats := &models.Stats{}

	queries := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM events`, &stats.TotalEvents},
		{`SELECT COUNT(*) FROM orders`, &stats.TotalOrders},
		{`SELECT COUNT(*) FROM events WHERE start_date > NOW()`, &stats.UpcomingEvents},
	}

	for _, q := range queries {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to collect stats: %w", err)
		}
	}
	return stats, nil
}

func (s *MySQLStore) Close() error {
	s.log.LogDatabase("CLOSE", "mysql", "Closing MySQL connection")
	return s.db.Close()
}

func (s *MySQLStore) HealthCheck() error {
	return s.db.Ping()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
