//go:build unit

package fakes

import (
	"context"
	"time"

	"restaurant-api/internal/domain/event"
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/review"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork is an in-memory stand-in that runs the callback directly,
// recording which transaction flavor was requested.
type UnitOfWork struct {
	Tx                *Tx
	WithinCalls       int
	SerializableCalls int
	ReturnErr         error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{Tx: NewTx()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.ReturnErr != nil {
		return u.ReturnErr
	}
	u.WithinCalls++
	return fn(ctx, u.Tx)
}

func (u *UnitOfWork) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.ReturnErr != nil {
		return u.ReturnErr
	}
	u.SerializableCalls++
	return fn(ctx, u.Tx)
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.Tx.CommandReadsFake
}

type Tx struct {
	ReservationRepo  *ReservationRepo
	ReviewRepo       *ReviewRepo
	CategoryRepo     *CategoryRepo
	MenuItemRepo     *MenuItemRepo
	EventRepo        *EventRepo
	GalleryRepo      *GalleryRepo
	MessageRepo      *MessageRepo
	UserRepo         *UserRepo
	CommandReadsFake *CommandReads
}

func NewTx() *Tx {
	return &Tx{
		ReservationRepo:  &ReservationRepo{},
		ReviewRepo:       &ReviewRepo{},
		CategoryRepo:     &CategoryRepo{},
		MenuItemRepo:     &MenuItemRepo{},
		EventRepo:        &EventRepo{},
		GalleryRepo:      &GalleryRepo{},
		MessageRepo:      &MessageRepo{},
		UserRepo:         &UserRepo{},
		CommandReadsFake: &CommandReads{},
	}
}

func (t *Tx) Reservations() shared.ReservationRepository { return t.ReservationRepo }
func (t *Tx) Reviews() shared.ReviewRepository           { return t.ReviewRepo }
func (t *Tx) Categories() shared.CategoryRepository      { return t.CategoryRepo }
func (t *Tx) MenuItems() shared.MenuItemRepository       { return t.MenuItemRepo }
func (t *Tx) Events() shared.EventRepository             { return t.EventRepo }
func (t *Tx) Gallery() shared.GalleryRepository          { return t.GalleryRepo }
func (t *Tx) Messages() shared.MessageRepository         { return t.MessageRepo }
func (t *Tx) Users() shared.UserRepository               { return t.UserRepo }
func (t *Tx) Reads() shared.CommandReads                 { return t.CommandReadsFake }
func (t *Tx) DB() db.DBTX                                { return nil }

// CommandReads returns canned snapshots and counts.
type CommandReads struct {
	Reservation       *shared.ReservationSnapshot
	ReservationErr    error
	Occupancy         int64
	OccupancyErr      error
	OccupancyRequests []time.Time
	Category          *shared.CategorySnapshot
	CategoryErr       error
	User              *shared.UserSnapshot
	UserErr           error
}

func (c *CommandReads) ReservationByID(_ context.Context, _ uuid.UUID) (*shared.ReservationSnapshot, error) {
	if c.ReservationErr != nil {
		return nil, c.ReservationErr
	}
	if c.Reservation == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return c.Reservation, nil
}

func (c *CommandReads) SlotOccupancy(_ context.Context, date time.Time, _ int) (int64, error) {
	c.OccupancyRequests = append(c.OccupancyRequests, date)
	if c.OccupancyErr != nil {
		return 0, c.OccupancyErr
	}
	return c.Occupancy, nil
}

func (c *CommandReads) CategoryByID(_ context.Context, _ uuid.UUID) (*shared.CategorySnapshot, error) {
	if c.CategoryErr != nil {
		return nil, c.CategoryErr
	}
	if c.Category == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "category not found")
	}
	return c.Category, nil
}

func (c *CommandReads) UserByEmail(_ context.Context, _ string) (*shared.UserSnapshot, error) {
	if c.UserErr != nil {
		return nil, c.UserErr
	}
	if c.User == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return c.User, nil
}

func (c *CommandReads) UserByID(_ context.Context, _ uuid.UUID) (*shared.UserSnapshot, error) {
	return c.UserByEmail(nil, "")
}

type ReservationRepo struct {
	Created       []*reservation.Reservation
	CreateErr     error
	StatusUpdates []reservation.Status
	UpdateErr     error
	Deleted       []uuid.UUID
	DeleteErr     error
}

func (r *ReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, res)
	return res.ID(), nil
}

func (r *ReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status reservation.Status, _ time.Time) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.StatusUpdates = append(r.StatusUpdates, status)
	return nil
}

func (r *ReservationRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type ReviewRepo struct {
	Created     []*review.Review
	CreateErr   error
	Approvals   []bool
	Features    []bool
	ModerateErr error
	Deleted     []uuid.UUID
	DeleteErr   error
}

func (r *ReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, rev)
	return rev.ID(), nil
}

func (r *ReviewRepo) SetApproved(_ context.Context, _ db.DBTX, _ uuid.UUID, approved bool, _ time.Time) error {
	if r.ModerateErr != nil {
		return r.ModerateErr
	}
	r.Approvals = append(r.Approvals, approved)
	return nil
}

func (r *ReviewRepo) SetFeatured(_ context.Context, _ db.DBTX, _ uuid.UUID, featured bool, _ time.Time) error {
	if r.ModerateErr != nil {
		return r.ModerateErr
	}
	r.Features = append(r.Features, featured)
	return nil
}

func (r *ReviewRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type CategoryRepo struct {
	Created   []*menu.Category
	Updated   []*menu.Category
	Deleted   []uuid.UUID
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func (r *CategoryRepo) Create(_ context.Context, _ db.DBTX, cat *menu.Category) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, cat)
	return cat.ID(), nil
}

func (r *CategoryRepo) Update(_ context.Context, _ db.DBTX, cat *menu.Category) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.Updated = append(r.Updated, cat)
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type MenuItemRepo struct {
	Created   []*menu.Item
	Updated   []*menu.Item
	Deleted   []uuid.UUID
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func (r *MenuItemRepo) Create(_ context.Context, _ db.DBTX, item *menu.Item) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, item)
	return item.ID(), nil
}

func (r *MenuItemRepo) Update(_ context.Context, _ db.DBTX, item *menu.Item) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.Updated = append(r.Updated, item)
	return nil
}

func (r *MenuItemRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type EventRepo struct {
	Created   []*event.Event
	Updated   []*event.Event
	Deleted   []uuid.UUID
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func (r *EventRepo) Create(_ context.Context, _ db.DBTX, ev *event.Event) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, ev)
	return ev.ID(), nil
}

func (r *EventRepo) Update(_ context.Context, _ db.DBTX, ev *event.Event) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.Updated = append(r.Updated, ev)
	return nil
}

func (r *EventRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type GalleryRepo struct {
	Created   []*shared.GalleryImage
	Updated   []*shared.GalleryImage
	Deleted   []uuid.UUID
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func (r *GalleryRepo) Create(_ context.Context, _ db.DBTX, img *shared.GalleryImage) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, img)
	return img.ID, nil
}

func (r *GalleryRepo) Update(_ context.Context, _ db.DBTX, img *shared.GalleryImage) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.Updated = append(r.Updated, img)
	return nil
}

func (r *GalleryRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type MessageRepo struct {
	Created   []*shared.ContactMessage
	Read      []uuid.UUID
	Deleted   []uuid.UUID
	CreateErr error
	ReadErr   error
	DeleteErr error
}

func (r *MessageRepo) Create(_ context.Context, _ db.DBTX, msg *shared.ContactMessage) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, msg)
	return msg.ID, nil
}

func (r *MessageRepo) MarkRead(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.ReadErr != nil {
		return r.ReadErr
	}
	r.Read = append(r.Read, id)
	return nil
}

func (r *MessageRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.Deleted = append(r.Deleted, id)
	return nil
}

type UserRepo struct {
	Created    []*user.User
	LastLogins []uuid.UUID
	CreateErr  error
	UpdateErr  error
}

func (r *UserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = append(r.Created, u)
	return u.ID(), nil
}

func (r *UserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, id uuid.UUID, _ time.Time) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.LastLogins = append(r.LastLogins, id)
	return nil
}
