package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/middleware"
	"github.com/serenespa/booking-api/internal/models"
	"github.com/serenespa/booking-api/internal/session"
	ucBooking "github.com/serenespa/booking-api/internal/usecase/booking"
)

// ----- fakes -----

type fakeBookingRepo struct {
	nextID   uint
	bookings map[uint]models.Booking
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	for _, ex := range f.bookings {
		if ex.SlotTime.Equal(b.SlotTime) {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) SlotOccupied(_ context.Context, slot time.Time) (bool, error) {
	for _, ex := range f.bookings {
		if ex.SlotTime.Equal(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return &b, nil
}

func (f *fakeBookingRepo) DeleteBooking(_ context.Context, id uint) error {
	if _, ok := f.bookings[id]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) ListForDay(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.SlotTime.Before(start) && b.SlotTime.Before(end) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotTime.Before(out[j].SlotTime) })
	return out, nil
}

func (f *fakeBookingRepo) ListForCustomer(_ context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotTime.Before(out[j].SlotTime) })
	return out, nil
}

type fakeSessions struct {
	tokens map[string]uint
}

func (f *fakeSessions) Create(_ context.Context, customerID uint) (string, error) {
	token := fmt.Sprintf("token-%d", customerID)
	f.tokens[token] = customerID
	return token, nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (uint, bool, error) {
	id, ok := f.tokens[token]
	return id, ok, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

// ----- helpers -----

func newBookingRouter(repo *fakeBookingRepo, sessions session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, nil),
		ucBooking.NewDeleteBooking(repo, nil),
		ucBooking.NewOccupiedSlots(repo),
	)

	r.GET("/get_booked_slots", h.BookedSlots)

	secured := r.Group("/")
	secured.Use(middleware.RequireSession(sessions))
	{
		secured.GET("/booking", h.Availability)
		secured.POST("/booking", h.Create)
		secured.POST("/delete_booking/:id", h.Delete)
	}
	return r
}

func postForm(r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func bookingForm(service, date, slot string) url.Values {
	return url.Values{
		"service_type":  {service},
		"selected_date": {date},
		"time_slot":     {slot},
	}
}

// ----- tests -----

// The register/login half of the flow is covered in usecase/customer; this
// walks the booking half: book 10am, collide on it, poll the slots.
func TestBookingScenario(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]models.Booking{}}
	sessions := &fakeSessions{tokens: map[string]uint{"token-1": 1, "token-2": 2}}
	r := newBookingRouter(repo, sessions)

	w := postForm(r, "/booking", "token-1", bookingForm("Massage", "2024-06-01", "10am"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		Booking struct {
			ID       uint   `json:"id"`
			TimeSlot string `json:"time_slot"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Booking.ID == 0 || created.Booking.TimeSlot != "10am" {
		t.Fatalf("unexpected booking payload: %s", w.Body.String())
	}

	// Same slot again, from another customer.
	w = postForm(r, "/booking", "token-2", bookingForm("Facial", "2024-06-01", "10am"))
	if w.Code != http.StatusConflict {
		t.Fatalf("conflict status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "slot_taken") {
		t.Fatalf("expected slot_taken, got %s", w.Body.String())
	}

	// Async poll, no session needed.
	w = get(r, "/get_booked_slots?selected_date=2024-06-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("poll status = %d", w.Code)
	}
	var poll struct {
		BookedSlots []string `json:"booked_slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &poll); err != nil {
		t.Fatal(err)
	}
	if len(poll.BookedSlots) != 1 || poll.BookedSlots[0] != "10am" {
		t.Fatalf("booked_slots = %v, want [10am]", poll.BookedSlots)
	}
}

func TestBookingRequiresSession(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]models.Booking{}}
	sessions := &fakeSessions{tokens: map[string]uint{}}
	r := newBookingRouter(repo, sessions)

	w := postForm(r, "/booking", "", bookingForm("Massage", "2024-06-01", "10am"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	w = get(r, "/booking?selected_date=2024-06-01", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("availability status = %d, want 401", w.Code)
	}
}

func TestBookingInvalidSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]models.Booking{}}
	sessions := &fakeSessions{tokens: map[string]uint{"token-1": 1}}
	r := newBookingRouter(repo, sessions)

	w := postForm(r, "/booking", "token-1", bookingForm("Massage", "2024-06-01", "sometime"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %s", w.Body.String())
	}

	// Missing form fields fail binding, not parsing.
	w = postForm(r, "/booking", "token-1", url.Values{"service_type": {"Massage"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteBookingOwnership(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]models.Booking{}}
	sessions := &fakeSessions{tokens: map[string]uint{"token-1": 1, "token-2": 2}}
	r := newBookingRouter(repo, sessions)

	w := postForm(r, "/booking", "token-1", bookingForm("Massage", "2024-06-01", "10am"))
	if w.Code != http.StatusCreated {
		t.Fatal(w.Body.String())
	}
	var created struct {
		Booking struct {
			ID uint `json:"id"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	path := fmt.Sprintf("/delete_booking/%d", created.Booking.ID)

	w = postForm(r, path, "token-2", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete status = %d, body %s", w.Code, w.Body.String())
	}

	w = postForm(r, path, "token-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, body %s", w.Code, w.Body.String())
	}

	w = postForm(r, path, "token-1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", w.Code)
	}

	w = postForm(r, "/delete_booking/notanumber", "token-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", w.Code)
	}
}

func TestAvailabilityDefaultsToToday(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]models.Booking{}}
	sessions := &fakeSessions{tokens: map[string]uint{"token-1": 1}}
	r := newBookingRouter(repo, sessions)

	w := get(r, "/booking", "token-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		SelectedDate string   `json:"selected_date"`
		BookedSlots  []string `json:"booked_slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.SelectedDate != time.Now().Format("2006-01-02") {
		t.Errorf("selected_date = %q, want today", resp.SelectedDate)
	}
	if resp.BookedSlots == nil || len(resp.BookedSlots) != 0 {
		t.Errorf("booked_slots = %v, want empty list", resp.BookedSlots)
	}
}
