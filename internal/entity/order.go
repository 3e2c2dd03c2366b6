package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Zone is the two-valued delivery destination choice. Anything that is
// not Abidjan pays the upcountry rate.
type Zone string

const (
	ZoneAbidjan Zone = "Abidjan"
	ZoneOutside Zone = "Hors Abidjan"
)

const (
	feeAbidjan = 1500
	feeOutside = 2000
)

// Fee returns the flat delivery surcharge for the zone, in FCFA.
func (z Zone) Fee() int64 {
	if z == ZoneAbidjan {
		return feeAbidjan
	}
	return feeOutside
}

var ErrInvalidOrder = errors.New("invalid order")

// Order is a cash-on-delivery order. The backend assigns ID, Status
// and CreatedAt; the client only builds the pre-insert payload.
type Order struct {
	ID              string     `json:"id"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerCity    string     `json:"customer_city"`
	CustomerAddress string     `json:"customer_address"`
	Items           []CartLine `json:"items"`
	Subtotal        int64      `json:"subtotal"`
	DeliveryFee     int64      `json:"delivery_fee"`
	TotalAmount     int64      `json:"total_amount"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (o *Order) Validate() error {
	if o.CustomerPhone == "" || o.CustomerAddress == "" {
		return ErrInvalidOrder
	}
	if len(o.Items) == 0 || o.TotalAmount != o.Subtotal+o.DeliveryFee {
		return ErrInvalidOrder
	}
	return nil
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalOrders    int           `json:"total_orders"`
	TotalRevenue   int64         `json:"total_revenue"`
	MonthlyRevenue []MonthBucket `json:"monthly_revenue"`
}

type MonthBucket struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
