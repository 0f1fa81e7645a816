package model

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int       `json:"-" db:"id"`
	UserUID      string    `json:"userUid" db:"user_uid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type CarStatus string

const (
	CarAvailable   CarStatus = "available"
	CarBooked      CarStatus = "booked"
	CarMaintenance CarStatus = "maintenance"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarAvailable, CarBooked, CarMaintenance:
		return true
	}
	return false
}

type Car struct {
	ID          int       `json:"-" db:"id"`
	CarUID      string    `json:"carUid" db:"car_uid"`
	Make        string    `json:"make" db:"make"`
	Model       string    `json:"model" db:"model"`
	Year        int       `json:"year" db:"year"`
	PricePerDay float64   `json:"pricePerDay" db:"price_per_day"`
	Status      CarStatus `json:"status" db:"status"`
	ImageURL    *string   `json:"imageURL,omitempty" db:"image_url"`
	Features    Features  `json:"features" db:"features"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingDeclined, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are permitted.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingDeclined, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// ActiveBookingStatuses are the statuses that count toward conflict detection.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

type Booking struct {
	ID         int           `json:"-" db:"id"`
	BookingUID string        `json:"bookingUid" db:"booking_uid"`
	UserUID    string        `json:"userUid" db:"user_uid"`
	CarUID     string        `json:"carUid" db:"car_uid"`
	StartDate  Date          `json:"startDate" db:"start_date"`
	EndDate    Date          `json:"endDate" db:"end_date"`
	TotalPrice float64       `json:"totalPrice" db:"total_price"`
	Status     BookingStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

// DurationDays is the ceiling of the calendar-day difference.
func (b Booking) DurationDays() int {
	return DurationDays(b.StartDate, b.EndDate)
}

func DurationDays(start, end Date) int {
	d := end.Sub(start.Time)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// BookingDetails attaches user and car summaries for admin listings and
// the dashboard.
type BookingDetails struct {
	Booking
	Username string `json:"username" db:"username"`
	CarMake  string `json:"carMake" db:"car_make"`
	CarModel string `json:"carModel" db:"car_model"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expiresIn"`
}

type CreateCarRequest struct {
	Make        string    `json:"make" validate:"required"`
	Model       string    `json:"model" validate:"required"`
	Year        int       `json:"year" validate:"required,min=1900"`
	PricePerDay float64   `json:"pricePerDay" validate:"min=0"`
	Status      CarStatus `json:"status" validate:"omitempty,oneof=available booked maintenance"`
	ImageURL    *string   `json:"imageURL"`
	Features    []string  `json:"features"`
}

type UpdateCarRequest struct {
	Make        *string    `json:"make"`
	Model       *string    `json:"model"`
	Year        *int       `json:"year"`
	PricePerDay *float64   `json:"pricePerDay"`
	Status      *CarStatus `json:"status"`
	ImageURL    *string    `json:"imageURL"`
	Features    *[]string  `json:"features"`
}

// CarFilter narrows public and admin car listings. Search matches make or
// model case-insensitively; price bounds are inclusive.
type CarFilter struct {
	Status   CarStatus
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

type CreateBookingRequest struct {
	CarUID    string `json:"carUid" validate:"required,uuid"`
	StartDate Date   `json:"startDate" validate:"required"`
	EndDate   Date   `json:"endDate" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=pending confirmed declined cancelled completed"`
}

type BookingFilter struct {
	Status  BookingStatus
	UserUID string
	CarUID  string
}

type BookingSort struct {
	By    string // created_at | start_date | total_price
	Order string // asc | desc
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBookings struct {
	Paging
	Items []BookingDetails `json:"items"`
}

type UserStats struct {
	Total  int `json:"total" db:"total"`
	Admins int `json:"admins" db:"admins"`
}

type CarStats struct {
	Total       int `json:"total" db:"total"`
	Available   int `json:"available" db:"available"`
	Booked      int `json:"booked" db:"booked"`
	Maintenance int `json:"maintenance" db:"maintenance"`
}

type BookingStats struct {
	Total     int `json:"total" db:"total"`
	Pending   int `json:"pending" db:"pending"`
	Confirmed int `json:"confirmed" db:"confirmed"`
	Declined  int `json:"declined" db:"declined"`
	Cancelled int `json:"cancelled" db:"cancelled"`
	Completed int `json:"completed" db:"completed"`
}

type Revenue struct {
	TotalCompletedRevenue float64 `json:"totalCompletedRevenue"`
}

type DashboardStats struct {
	Users          UserStats        `json:"users"`
	Cars           CarStats         `json:"cars"`
	Bookings       BookingStats     `json:"bookings"`
	Revenue        Revenue          `json:"revenue"`
	RecentBookings []BookingDetails `json:"recentBookings"`
}
