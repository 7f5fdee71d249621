package services

import (
	"context"
	"sync"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu                 sync.Mutex
	users              map[primitive.ObjectID]*models.User
	markDonatedCalls   int
	clearCooldownCalls int
	markDonatedErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user.ID
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context, page, limit int) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, user := range f.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, user := range f.users {
		if !user.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) MarkDonated(ctx context.Context, id primitive.ObjectID, donatedAt, nextEligible time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markDonatedErr != nil {
		return f.markDonatedErr
	}
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.markDonatedCalls++
	user.DonationStatus = models.DonationInactive
	donated := donatedAt
	next := nextEligible
	user.LastDonationDate = &donated
	user.NextEligibleDate = &next
	return nil
}

func (f *fakeUserRepo) ClearCooldown(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.clearCooldownCalls++
	user.DonationStatus = models.DonationActive
	user.NextEligibleDate = nil
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.BloodRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[primitive.ObjectID]*models.BloodRequest)}
}

func (f *fakeRequestRepo) add(request *models.BloodRequest) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	f.requests[request.ID] = request
	return request.ID
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.BloodRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request.ID = primitive.NewObjectID()
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) FindActive(ctx context.Context) ([]*models.BloodRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	requests := []*models.BloodRequest{}
	for _, request := range f.requests {
		if !request.IsDeleted {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) FindByCreator(ctx context.Context, creatorID primitive.ObjectID, deleted bool) ([]*models.BloodRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	requests := []*models.BloodRequest{}
	for _, request := range f.requests {
		if request.CreatedBy == creatorID && request.IsDeleted == deleted {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return repositories.ErrNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeRequestRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return repositories.ErrNotFound
	}
	request.IsDeleted = true
	return nil
}

func (f *fakeRequestRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.requests)), nil
}

func (f *fakeRequestRepo) CountByStatuses(ctx context.Context, statuses []models.RequestStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, request := range f.requests {
		if request.IsDeleted {
			continue
		}
		for _, status := range statuses {
			if request.Status == status {
				n++
				break
			}
		}
	}
	return n, nil
}

type fakeResponseRepo struct {
	mu        sync.Mutex
	responses map[primitive.ObjectID]*models.BloodRequestResponse
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: make(map[primitive.ObjectID]*models.BloodRequestResponse)}
}

func (f *fakeResponseRepo) Create(ctx context.Context, response *models.BloodRequestResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.responses {
		if existing.BloodRequest == response.BloodRequest && existing.Donor == response.Donor {
			return repositories.ErrDuplicate
		}
	}
	response.ID = primitive.NewObjectID()
	response.CreatedAt = time.Now()
	f.responses[response.ID] = response
	return nil
}

func (f *fakeResponseRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequestResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	response, ok := f.responses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *response
	return &copied, nil
}

func (f *fakeResponseRepo) FindByRequest(ctx context.Context, requestID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	responses := []*models.BloodRequestResponse{}
	for _, response := range f.responses {
		if response.BloodRequest == requestID {
			copied := *response
			responses = append(responses, &copied)
		}
	}
	return responses, nil
}

func (f *fakeResponseRepo) FindByDonor(ctx context.Context, donorID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	responses := []*models.BloodRequestResponse{}
	for _, response := range f.responses {
		if response.Donor == donorID {
			copied := *response
			responses = append(responses, &copied)
		}
	}
	return responses, nil
}

func (f *fakeResponseRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ResponseStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	response, ok := f.responses[id]
	if !ok {
		return repositories.ErrNotFound
	}
	response.Status = status
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[primitive.ObjectID]*models.Event)}
}

func (f *fakeEventRepo) add(event *models.Event) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	f.events[event.ID] = event
	return event.ID
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := []*models.Event{}
	for _, event := range f.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.events)), nil
}

func (f *fakeEventRepo) ClaimSlot(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return repositories.ErrLimitReached
	}
	if event.RegistrationLimit > 0 && event.RegisteredCount >= event.RegistrationLimit {
		return repositories.ErrLimitReached
	}
	event.RegisteredCount++
	return nil
}

func (f *fakeEventRepo) ReleaseSlot(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil
	}
	if event.RegisteredCount > 0 {
		event.RegisteredCount--
	}
	return nil
}

type fakeRegistrationRepo struct {
	mu            sync.Mutex
	registrations map[primitive.ObjectID]*models.EventRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[primitive.ObjectID]*models.EventRegistration)}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, registration *models.EventRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.registrations {
		if existing.Event == registration.Event && existing.User == registration.User {
			return repositories.ErrDuplicate
		}
	}
	registration.ID = primitive.NewObjectID()
	registration.CreatedAt = time.Now()
	registration.UpdatedAt = time.Now()
	f.registrations[registration.ID] = registration
	return nil
}

func (f *fakeRegistrationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	registration, ok := f.registrations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *registration
	return &copied, nil
}

func (f *fakeRegistrationRepo) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, registration := range f.registrations {
		if registration.Event == eventID && registration.User == userID {
			copied := *registration
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRegistrationRepo) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	registrations := []*models.EventRegistration{}
	for _, registration := range f.registrations {
		if registration.Event == eventID {
			copied := *registration
			registrations = append(registrations, &copied)
		}
	}
	return registrations, nil
}

func (f *fakeRegistrationRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	registrations := []*models.EventRegistration{}
	for _, registration := range f.registrations {
		if registration.User == userID {
			copied := *registration
			registrations = append(registrations, &copied)
		}
	}
	return registrations, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RegistrationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	registration, ok := f.registrations[id]
	if !ok {
		return repositories.ErrNotFound
	}
	registration.Status = status
	return nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.registrations[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.registrations, id)
	return nil
}

type fakeInventoryRepo struct {
	mu          sync.Mutex
	inventories map[primitive.ObjectID]*models.BloodInventory
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{inventories: make(map[primitive.ObjectID]*models.BloodInventory)}
}

func (f *fakeInventoryRepo) Upsert(ctx context.Context, inventory *models.BloodInventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if inventory.ID.IsZero() {
		inventory.ID = primitive.NewObjectID()
	}
	copied := *inventory
	f.inventories[inventory.UserID] = &copied
	return nil
}

func (f *fakeInventoryRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.BloodInventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inventory, ok := f.inventories[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *inventory
	return &copied, nil
}

func (f *fakeInventoryRepo) FindAll(ctx context.Context) ([]*models.BloodInventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inventories := []*models.BloodInventory{}
	for _, inventory := range f.inventories {
		copied := *inventory
		inventories = append(inventories, &copied)
	}
	return inventories, nil
}
