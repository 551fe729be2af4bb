//go:build unit || e2e

// Package upstreamtest runs an in-memory booking API for end-to-end tests.
package upstreamtest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const naiveLayout = "2006-01-02T15:04:05"

const (
	ServiceHaircut int64 = 1
	ServiceBeard   int64 = 2
	BarberDavit    int64 = 3
	BarberLevan    int64 = 4
	KnownPhone           = "599123456"
)

type Booking struct {
	ID            int64
	ServiceID     int64
	BarberID      int64
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Status        string
}

type FakeAPI struct {
	mu          sync.Mutex
	server      *httptest.Server
	bookings    map[int64]*Booking
	nextID      int64
	rejectMoves string
	calls       map[string]int
}

// New starts the fake and stops it when t ends. Times are naive and read in UTC.
func New(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		bookings: make(map[int64]*Booking),
		nextID:   100,
		calls:    make(map[string]int),
	}

	engine := gin.New()
	api := engine.Group("/api", f.count)
	api.GET("/services", f.services)
	api.GET("/barbers", f.barbers)
	api.GET("/available-slots/:barber/:date", f.slots)
	api.POST("/bookings/create", f.create)
	api.POST("/clients/lookup", f.lookup)
	api.GET("/admin/all-bookings", f.events)
	// one wildcard avoids static/param conflicts between the admin paths
	api.Any("/admin/bookings/*rest", f.admin)

	f.server = httptest.NewServer(engine)
	t.Cleanup(f.server.Close)
	return f
}

// BaseURL is what UPSTREAM_BASE_URL should be set to.
func (f *FakeAPI) BaseURL() string {
	return f.server.URL + "/api"
}

func (f *FakeAPI) Seed(b Booking) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == 0 {
		f.nextID++
		b.ID = f.nextID
	}
	if b.Status == "" {
		b.Status = "confirmed"
	}
	f.bookings[b.ID] = &b
	return b.ID
}

func (f *FakeAPI) Booking(id int64) (Booking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return Booking{}, false
	}
	return *b, true
}

// RejectMoves makes every reschedule answer success=false with msg. An empty
// msg accepts moves again.
func (f *FakeAPI) RejectMoves(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectMoves = msg
}

// Calls counts requests by path prefix, e.g. "/api/services".
func (f *FakeAPI) Calls(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for path, c := range f.calls {
		if strings.HasPrefix(path, prefix) {
			n += c
		}
	}
	return n
}

func (f *FakeAPI) count(c *gin.Context) {
	f.mu.Lock()
	f.calls[c.Request.URL.Path]++
	f.mu.Unlock()
	c.Next()
}

func (f *FakeAPI) services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "services": []gin.H{
		{"id": ServiceHaircut, "name": "Classic haircut", "description": "Scissors and clipper", "price": 30, "duration": 30},
		{"id": ServiceBeard, "name": "Beard trim", "description": "", "price": 20, "duration": 20},
	}})
}

func (f *FakeAPI) barbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "barbers": []gin.H{
		{"id": BarberDavit, "name": "Davit Temuriani", "specialization": "Fades"},
		{"id": BarberLevan, "name": "Levan Kapanadze", "specialization": "Beards"},
	}})
}

func (f *FakeAPI) slots(c *gin.Context) {
	if c.Param("barber") == strconv.FormatInt(BarberLevan, 10) {
		c.JSON(http.StatusOK, gin.H{"is_working": false, "slots": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_working": true, "slots": gin.H{
		"morning":   []string{"10:00", "10:30"},
		"afternoon": []string{"14:00"},
		"evening":   []string{},
	}})
}

func (f *FakeAPI) create(c *gin.Context) {
	var body struct {
		ServiceID     int64  `json:"service_id"`
		BarberID      int64  `json:"barber_id"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		CustomerEmail string `json:"customer_email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	start, err := time.Parse("2006-01-02 15:04", body.Date+" "+body.Time)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "errors": gin.H{"time": []string{"Invalid time"}}})
		return
	}
	if body.Time == "14:00" && f.taken(body.BarberID, start) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "This time was just booked"})
		return
	}

	id := f.Seed(Booking{
		ServiceID:     body.ServiceID,
		BarberID:      body.BarberID,
		Start:         start,
		End:           start.Add(30 * time.Minute),
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		CustomerEmail: body.CustomerEmail,
		Status:        "pending",
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "booking_id": id, "confirmation_code": "BF-" + strconv.FormatInt(id, 10)})
}

func (f *FakeAPI) taken(barberID int64, start time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Start.Equal(start) {
			return true
		}
	}
	return false
}

func (f *FakeAPI) lookup(c *gin.Context) {
	var body struct {
		Phone string `json:"phone"`
	}
	_ = c.ShouldBindJSON(&body)
	if strings.ReplaceAll(body.Phone, " ", "") != KnownPhone {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "name": "Giorgi Giorgadze", "email": "giorgi@example.com", "is_blocked": false, "last_visit": "2025-10-02"})
}

func (f *FakeAPI) events(c *gin.Context) {
	start, _ := time.Parse(time.RFC3339, c.Query("start"))
	end, _ := time.Parse(time.RFC3339, c.Query("end"))
	barber := c.Query("barber_id")

	f.mu.Lock()
	out := make([]gin.H, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.End.Before(start) || !b.Start.Before(end) {
			continue
		}
		if barber != "" && barber != strconv.FormatInt(b.BarberID, 10) {
			continue
		}
		out = append(out, gin.H{
			"id":              b.ID,
			"title":           b.CustomerName,
			"start":           b.Start.UTC().Format(naiveLayout),
			"end":             b.End.UTC().Format(naiveLayout),
			"barberId":        b.BarberID,
			"serviceId":       b.ServiceID,
			"serviceName":     "Classic haircut",
			"servicePrice":    30,
			"serviceDuration": 30,
			"customerName":    b.CustomerName,
			"customerPhone":   b.CustomerPhone,
			"status":          b.Status,
		})
	}
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i]["id"].(int64) < out[j]["id"].(int64) })
	c.JSON(http.StatusOK, gin.H{"success": true, "events": out})
}

// admin serves /admin/bookings/new, /edit/{id}, /{id}/update-datetime,
// /{id}/update-status and /delete/{id}.
func (f *FakeAPI) admin(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("rest"), "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "new" && c.Request.Method == http.MethodPost:
		f.adminCreate(c)
	case len(parts) == 2 && parts[0] == "edit" && c.Request.Method == http.MethodPost:
		f.adminEdit(c, parts[1])
	case len(parts) == 2 && parts[0] == "delete" && c.Request.Method == http.MethodPost:
		f.withBooking(c, parts[1], func(b *Booking) {
			delete(f.bookings, b.ID)
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	case len(parts) == 2 && parts[1] == "update-datetime" && c.Request.Method == http.MethodPatch:
		var body struct {
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		}
		_ = c.ShouldBindJSON(&body)
		f.withBooking(c, parts[0], func(b *Booking) {
			if f.rejectMoves != "" {
				c.JSON(http.StatusOK, gin.H{"success": false, "error": f.rejectMoves})
				return
			}
			start, err1 := time.Parse(time.RFC3339, body.StartTime)
			end, err2 := time.Parse(time.RFC3339, body.EndTime)
			if err1 != nil || err2 != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid datetime"})
				return
			}
			b.Start, b.End = start, end
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	case len(parts) == 2 && parts[1] == "update-status" && c.Request.Method == http.MethodPost:
		var body struct {
			Status string `json:"status"`
		}
		_ = c.ShouldBindJSON(&body)
		f.withBooking(c, parts[0], func(b *Booking) {
			b.Status = body.Status
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	default:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	}
}

type adminForm struct {
	ServiceID   int64  `json:"service_id"`
	BarberID    int64  `json:"barber_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Status      string `json:"status"`
}

// parse answers the form errors itself and reports whether the form is usable.
func (form adminForm) parse(c *gin.Context) (time.Time, bool) {
	if strings.TrimSpace(form.ClientName) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "errors": gin.H{"client_name": []string{"The client name field is required."}}})
		return time.Time{}, false
	}
	start, err := time.Parse("2006-01-02 15:04", form.BookingDate+" "+form.BookingTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{"booking_time": "Not a valid time"}})
		return time.Time{}, false
	}
	return start, true
}

func (f *FakeAPI) adminEdit(c *gin.Context, rawID string) {
	var form adminForm
	_ = c.ShouldBindJSON(&form)
	f.withBooking(c, rawID, func(b *Booking) {
		start, ok := form.parse(c)
		if !ok {
			return
		}
		b.ServiceID = form.ServiceID
		b.BarberID = form.BarberID
		b.Start, b.End = start, start.Add(30*time.Minute)
		b.CustomerName = form.ClientName
		b.CustomerPhone = form.ClientPhone
		b.Status = form.Status
		c.JSON(http.StatusOK, gin.H{"success": true, "booking_id": b.ID})
	})
}

func (f *FakeAPI) adminCreate(c *gin.Context) {
	var form adminForm
	_ = c.ShouldBindJSON(&form)
	start, ok := form.parse(c)
	if !ok {
		return
	}
	id := f.Seed(Booking{
		ServiceID:     form.ServiceID,
		BarberID:      form.BarberID,
		Start:         start,
		End:           start.Add(30 * time.Minute),
		CustomerName:  form.ClientName,
		CustomerPhone: form.ClientPhone,
		Status:        form.Status,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "booking_id": id})
}

func (f *FakeAPI) withBooking(c *gin.Context, rawID string, fn func(b *Booking)) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	fn(b)
}
