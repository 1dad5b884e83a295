package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[uuid.UUID]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Users[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// BookingRepositoryStub keeps bookings in memory and honours the status compare-and-set.
// Fn overrides take precedence over the in-memory behaviour.
type BookingRepositoryStub struct {
	CreateFn       func(context.Context, *model.Booking) (*model.Booking, error)
	GetByIDFn      func(context.Context, uuid.UUID) (*model.Booking, error)
	UpdateStatusFn func(context.Context, uuid.UUID, model.BookingStatus, model.BookingStatus) (*model.Booking, error)

	mu          sync.Mutex
	Bookings    map[uuid.UUID]model.Booking
	UpdateCalls []BookingStatusUpdate
}

// BookingStatusUpdate records one UpdateStatus invocation.
type BookingStatusUpdate struct {
	ID   uuid.UUID
	From model.BookingStatus
	To   model.BookingStatus
}

// NewBookingRepositoryStub returns a stub seeded with the given bookings.
func NewBookingRepositoryStub(seed ...model.Booking) *BookingRepositoryStub {
	s := &BookingRepositoryStub{Bookings: make(map[uuid.UUID]model.Booking)}
	for _, b := range seed {
		s.Bookings[b.ID] = b
	}
	return s
}

// Create stores the booking with fresh timestamps.
func (s *BookingRepositoryStub) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, b)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Bookings == nil {
		s.Bookings = make(map[uuid.UUID]model.Booking)
	}
	stored := *b
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Bookings[stored.ID] = stored
	return &stored, nil
}

// GetByID returns a copy of the stored booking.
func (s *BookingRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Bookings[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &b, nil
}

// ListByClient returns the client's bookings, newest first.
func (s *BookingRepositoryStub) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Booking, error) {
	return s.list(func(b model.Booking) bool { return b.ClientID == clientID }), nil
}

// ListByFreelancer returns the freelancer's bookings, newest first.
func (s *BookingRepositoryStub) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Booking, error) {
	return s.list(func(b model.Booking) bool { return b.FreelancerID == freelancerID }), nil
}

func (s *BookingRepositoryStub) list(match func(model.Booking) bool) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range s.Bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UpdateStatus moves the booking only when its stored status still equals from.
func (s *BookingRepositoryStub) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.BookingStatus) (*model.Booking, error) {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, BookingStatusUpdate{ID: id, From: from, To: to})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Bookings[id]
	if !ok || b.Status != from {
		return nil, domainErrors.ErrConflict
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	s.Bookings[id] = b
	return &b, nil
}

// Updates returns a snapshot of recorded UpdateStatus calls.
func (s *BookingRepositoryStub) Updates() []BookingStatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]BookingStatusUpdate(nil), s.UpdateCalls...)
}

// NotificationRepositoryStub keeps notifications in memory.
type NotificationRepositoryStub struct {
	CreateFn func(context.Context, *model.Notification) (*model.Notification, error)
	Err      error

	mu            sync.Mutex
	Notifications []model.Notification
}

// Create appends the notification unless CreateFn or Err says otherwise.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, n)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *n
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.Notifications = append(s.Notifications, stored)
	return &stored, nil
}

// GetByID finds a stored notification.
func (s *NotificationRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.Notifications {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns up to limit notifications of the user, newest first.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0)
	for i := len(s.Notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if s.Notifications[i].UserID == userID {
			out = append(out, s.Notifications[i])
		}
	}
	return out, nil
}

// CountUnread counts unread notifications of the user.
func (s *NotificationRepositoryStub) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, n := range s.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead flags a single notification.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].IsRead = true
			n := s.Notifications[i]
			return &n, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MarkAllRead flags every unread notification of the user.
func (s *NotificationRepositoryStub) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var changed int64
	for i := range s.Notifications {
		if s.Notifications[i].UserID == userID && !s.Notifications[i].IsRead {
			s.Notifications[i].IsRead = true
			changed++
		}
	}
	return changed, nil
}

// Stored returns a snapshot of every stored notification.
func (s *NotificationRepositoryStub) Stored() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Notifications...)
}

// ReviewRepositoryStub keeps reviews in memory and enforces one review per booking.
type ReviewRepositoryStub struct {
	Reviews  []model.Review
	Err      error
	CreateFn func(context.Context, *model.Review) (*model.Review, error)
}

func (s *ReviewRepositoryStub) Create(ctx context.Context, r *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, r)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Reviews {
		if existing.BookingID == r.BookingID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *r
	stored.CreatedAt = time.Now()
	s.Reviews = append(s.Reviews, stored)
	return &stored, nil
}

func (s *ReviewRepositoryStub) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, existing := range s.Reviews {
		if existing.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReviewRepositoryStub) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Review, 0)
	for i := len(s.Reviews) - 1; i >= 0; i-- {
		if s.Reviews[i].FreelancerID == freelancerID {
			out = append(out, s.Reviews[i])
		}
	}
	return out, nil
}

// PricingRepositoryStub keeps packages in memory with a per-freelancer unique title.
type PricingRepositoryStub struct {
	Packages map[uuid.UUID]model.PricingPackage
	Err      error
}

// NewPricingRepositoryStub returns a stub seeded with the given packages.
func NewPricingRepositoryStub(seed ...model.PricingPackage) *PricingRepositoryStub {
	s := &PricingRepositoryStub{Packages: make(map[uuid.UUID]model.PricingPackage)}
	for _, p := range seed {
		s.Packages[p.ID] = p
	}
	return s
}

func (s *PricingRepositoryStub) Create(ctx context.Context, p *model.PricingPackage) (*model.PricingPackage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.titleTaken(p) {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *p
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Packages[stored.ID] = stored
	return &stored, nil
}

func (s *PricingRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.PricingPackage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Packages[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &p, nil
}

func (s *PricingRepositoryStub) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.PricingPackage, 0)
	for _, p := range s.Packages {
		if p.FreelancerID == freelancerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *PricingRepositoryStub) Update(ctx context.Context, p *model.PricingPackage) (*model.PricingPackage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Packages[p.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	if s.titleTaken(p) {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *p
	stored.UpdatedAt = time.Now()
	s.Packages[p.ID] = stored
	return &stored, nil
}

func (s *PricingRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Packages[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Packages, id)
	return nil
}

func (s *PricingRepositoryStub) titleTaken(p *model.PricingPackage) bool {
	for _, existing := range s.Packages {
		if existing.ID != p.ID && existing.FreelancerID == p.FreelancerID && existing.Title == p.Title {
			return true
		}
	}
	return false
}

// ProfileRepositoryStub keeps one profile per user.
type ProfileRepositoryStub struct {
	Profiles map[uuid.UUID]model.FreelancerProfile
	Err      error
}

// NewProfileRepositoryStub returns a stub seeded with the given profiles.
func NewProfileRepositoryStub(seed ...model.FreelancerProfile) *ProfileRepositoryStub {
	s := &ProfileRepositoryStub{Profiles: make(map[uuid.UUID]model.FreelancerProfile)}
	for _, p := range seed {
		s.Profiles[p.UserID] = p
	}
	return s
}

func (s *ProfileRepositoryStub) Create(ctx context.Context, p *model.FreelancerProfile) (*model.FreelancerProfile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Profiles[p.UserID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *p
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Profiles[stored.UserID] = stored
	return &stored, nil
}

func (s *ProfileRepositoryStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.FreelancerProfile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Profiles[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &p, nil
}

func (s *ProfileRepositoryStub) Update(ctx context.Context, p *model.FreelancerProfile) (*model.FreelancerProfile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Profiles[p.UserID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *p
	stored.UpdatedAt = time.Now()
	s.Profiles[p.UserID] = stored
	return &stored, nil
}

func (s *ProfileRepositoryStub) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Profiles[userID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Profiles, userID)
	return nil
}

// ShowcaseRepositoryStub keeps showcases in insertion order.
type ShowcaseRepositoryStub struct {
	Showcases []model.ProjectShowcase
	Err       error
}

func (s *ShowcaseRepositoryStub) Create(ctx context.Context, p *model.ProjectShowcase) (*model.ProjectShowcase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *p
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Showcases = append(s.Showcases, stored)
	return &stored, nil
}

func (s *ShowcaseRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectShowcase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Showcases {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShowcaseRepositoryStub) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.ProjectShowcase, 0)
	for i := len(s.Showcases) - 1; i >= 0; i-- {
		if s.Showcases[i].FreelancerID == freelancerID {
			out = append(out, s.Showcases[i])
		}
	}
	return out, nil
}

func (s *ShowcaseRepositoryStub) Update(ctx context.Context, p *model.ProjectShowcase) (*model.ProjectShowcase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Showcases {
		if s.Showcases[i].ID == p.ID {
			stored := *p
			stored.UpdatedAt = time.Now()
			s.Showcases[i] = stored
			return &stored, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShowcaseRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Showcases {
		if s.Showcases[i].ID == id {
			s.Showcases = append(s.Showcases[:i], s.Showcases[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// FreelancerDirectoryStub serves fixed summaries and records the last search filter.
type FreelancerDirectoryStub struct {
	Summaries  map[uuid.UUID]model.FreelancerSummary
	Err        error
	LastFilter model.FreelancerFilter
	SearchFn   func(context.Context, model.FreelancerFilter) ([]model.FreelancerSummary, error)
}

func (s *FreelancerDirectoryStub) Search(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error) {
	s.LastFilter = filter
	if s.SearchFn != nil {
		return s.SearchFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.FreelancerSummary, 0, len(s.Summaries))
	for _, summary := range s.Summaries {
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	return out, nil
}

func (s *FreelancerDirectoryStub) Summary(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	summary, ok := s.Summaries[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &summary, nil
}

// RepositoryFactoryStub hands out the configured stubs.
type RepositoryFactoryStub struct {
	UserRepo         repository.UserRepository
	BookingRepo      repository.BookingRepository
	NotificationRepo repository.NotificationRepository
	ReviewRepo       repository.ReviewRepository
	PricingRepo      repository.PricingRepository
	ProfileRepo      repository.ProfileRepository
	ShowcaseRepo     repository.ShowcaseRepository
	DirectoryRepo    repository.FreelancerDirectory
}

func (f RepositoryFactoryStub) Users() repository.UserRepository                 { return f.UserRepo }
func (f RepositoryFactoryStub) Bookings() repository.BookingRepository           { return f.BookingRepo }
func (f RepositoryFactoryStub) Notifications() repository.NotificationRepository { return f.NotificationRepo }
func (f RepositoryFactoryStub) Reviews() repository.ReviewRepository             { return f.ReviewRepo }
func (f RepositoryFactoryStub) Pricing() repository.PricingRepository            { return f.PricingRepo }
func (f RepositoryFactoryStub) Profiles() repository.ProfileRepository           { return f.ProfileRepo }
func (f RepositoryFactoryStub) Showcases() repository.ShowcaseRepository         { return f.ShowcaseRepo }
func (f RepositoryFactoryStub) Freelancers() repository.FreelancerDirectory       { return f.DirectoryRepo }

var (
	_ repository.UserRepository         = (*UserRepositoryStub)(nil)
	_ repository.BookingRepository      = (*BookingRepositoryStub)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryStub)(nil)
	_ repository.ReviewRepository       = (*ReviewRepositoryStub)(nil)
	_ repository.PricingRepository      = (*PricingRepositoryStub)(nil)
	_ repository.ProfileRepository      = (*ProfileRepositoryStub)(nil)
	_ repository.ShowcaseRepository     = (*ShowcaseRepositoryStub)(nil)
	_ repository.FreelancerDirectory    = (*FreelancerDirectoryStub)(nil)
	_ repository.Factory                = RepositoryFactoryStub{}
)
