package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
)

// envelope wraps every successful response body.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type registerUserRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	PartnerID *string `json:"partnerId,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type orderRequest struct {
	Customer         string          `json:"customer"`
	CustomerPhone    string          `json:"customerPhone"`
	PickupAddress    string          `json:"pickupAddress"`
	DeliveryAddress  string          `json:"deliveryAddress"`
	PickupLocation   kernel.GeoPoint `json:"pickupLocation"`
	DeliveryLocation kernel.GeoPoint `json:"deliveryLocation"`
	Items            []string        `json:"items"`
}

type assignOrderRequest struct {
	PartnerID *string `json:"partnerId,omitempty"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type partnerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Location kernel.GeoPoint `json:"location"`
}

type partnerContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type partnerStatusRequest struct {
	Status   string           `json:"status"`
	Location *kernel.GeoPoint `json:"location,omitempty"`
}

type userResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	PartnerID *string `json:"partnerId,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// assignmentResponse pairs the affected order with the partner that took or
// released it. Partner is null when the partner record no longer exists.
type assignmentResponse struct {
	Order   orderResponse    `json:"order"`
	Partner *partnerResponse `json:"partner"`
}

type orderResponse struct {
	ID               string          `json:"id"`
	Customer         string          `json:"customer"`
	CustomerPhone    string          `json:"customerPhone"`
	PickupAddress    string          `json:"pickupAddress"`
	DeliveryAddress  string          `json:"deliveryAddress"`
	PickupLocation   kernel.GeoPoint `json:"pickupLocation"`
	DeliveryLocation kernel.GeoPoint `json:"deliveryLocation"`
	Items            []string        `json:"items"`
	Status           string          `json:"status"`
	PartnerID        *string         `json:"partnerId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type partnerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       kernel.GeoPoint `json:"location"`
	Status         string          `json:"status"`
	AssignedOrders []string        `json:"assignedOrders"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	return orderResponse{
		ID:               o.ID.String(),
		Customer:         o.Customer,
		CustomerPhone:    o.CustomerPhone,
		PickupAddress:    o.PickupAddress,
		DeliveryAddress:  o.DeliveryAddress,
		PickupLocation:   o.PickupPoint,
		DeliveryLocation: o.DeliveryPoint,
		Items:            o.Items,
		Status:           o.Status.String(),
		PartnerID:        uuidPtrString(o.PartnerID),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	responses := make([]orderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}

func toPartnerResponse(p queries.PartnerResponse) partnerResponse {
	assigned := make([]string, len(p.AssignedOrders))
	for i, id := range p.AssignedOrders {
		assigned[i] = id.String()
	}

	return partnerResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Location:       p.Location,
		Status:         p.Status.String(),
		AssignedOrders: assigned,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPartnerResponses(partners []queries.PartnerResponse) []partnerResponse {
	responses := make([]partnerResponse, len(partners))
	for i, p := range partners {
		responses[i] = toPartnerResponse(p)
	}
	return responses
}

func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
