package shared

import (
	"context"
	"time"

	"restaurant-api/internal/domain/event"
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/review"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for writes that depend on
	// an in-transaction count, retried on serialization failure
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Categories() CategoryRepository
	MenuItems() MenuItemRepository
	Events() EventRepository
	Gallery() GalleryRepository
	Messages() MessageRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// SlotOccupancy counts pending and confirmed reservations for a slot.
	// Inside a serializable transaction this is the capacity gate.
	SlotOccupancy(ctx context.Context, date time.Time, timeMinutes int) (int64, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status, now time.Time) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error)
	SetApproved(ctx context.Context, dbtx db.DBTX, id uuid.UUID, approved bool, now time.Time) error
	SetFeatured(ctx context.Context, dbtx db.DBTX, id uuid.UUID, featured bool, now time.Time) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, cat *menu.Category) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, cat *menu.Category) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, item *menu.Item) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, item *menu.Item) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, ev *event.Event) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, ev *event.Event) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type GalleryImage struct {
	ID           uuid.UUID
	Title        string
	ImageURL     string
	Caption      string
	DisplayOrder int32
	CreatedAt    time.Time
}

type GalleryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, img *GalleryImage) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, img *GalleryImage) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

type MessageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, msg *ContactMessage) (uuid.UUID, error)
	MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error
}
