package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type CheckoutOrder struct {
	CustomerID      string       `json:"customer_id"`
	Items           []Item       `json:"items"`
	CustomerInfo    CustomerInfo `json:"customer_info"`
	ShippingAddress Address      `json:"shipping_address"`
	Subtotal        int64        `json:"subtotal"`
	Shipping        int64        `json:"shipping"`
	Tax             int64        `json:"tax"`
	Discount        int64        `json:"discount"`
	Total           int64        `json:"total"`
	PaymentMethod   string       `json:"payment_method"`
	PaymentID       string       `json:"payment_id"`
	PaymentStatus   string       `json:"payment_status"`
	CreatedAt       string       `json:"created_at"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

var (
	names  = []string{"t-shirt", "hoodie", "sneakers", "cap", "jeans", "jacket"}
	sizes  = []string{"XS", "S", "M", "L", "XL"}
	colors = []string{"black", "white", "navy", "olive", "red"}
)

func generateRandomOrder() CheckoutOrder {
	count := rand.Intn(3) + 1
	items := make([]Item, 0, count)
	var subtotal int64
	for i := 0; i < count; i++ {
		qty := rand.Intn(3) + 1
		price := int64(rand.Intn(9000) + 999)
		items = append(items, Item{
			ProductID: "prod_" + randomString(8),
			Name:      names[rand.Intn(len(names))],
			Price:     price,
			Quantity:  qty,
			Size:      sizes[rand.Intn(len(sizes))],
			Color:     colors[rand.Intn(len(colors))],
		})
		subtotal += price * int64(qty)
	}

	shipping := int64(rand.Intn(1000))
	tax := subtotal / 10
	var discount int64
	if rand.Intn(4) == 0 {
		discount = 500
	}

	return CheckoutOrder{
		CustomerID: "customer_" + randomString(6),
		Items:      items,
		CustomerInfo: CustomerInfo{
			Name:  "John Doe",
			Email: fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
			Phone: fmt.Sprintf("+%d", rand.Intn(9999999999)),
		},
		ShippingAddress: Address{
			Street:  fmt.Sprintf("%d Main St", rand.Intn(100)+1),
			City:    "Springfield",
			State:   "IL",
			Zip:     fmt.Sprintf("%05d", rand.Intn(99999)),
			Country: "US",
		},
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		// сумма должна сходиться, иначе сервис уронит заказ в DLQ
		Total:         subtotal + shipping + tax - discount,
		PaymentMethod: "card",
		PaymentID:     "pay_" + randomString(12),
		PaymentStatus: "paid",
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "checkout-orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.CustomerID, order.Total)
		case <-ctx.Done():
			return
		}
	}
}
