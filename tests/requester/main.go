package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL       = "http://localhost:9000"
	fixedCustomer = "customer_abc123"
	fixedOrder    = "ORD-20250601-ABCDEF12"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	var req *http.Request
	switch rand.Intn(3) {
	case 0:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/admin/orders?page=1&limit=10", nil)
		req.Header.Set("X-User-Id", "admin_1")
		req.Header.Set("X-User-Role", "admin")
	case 1:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/admin/orders/stats", nil)
		req.Header.Set("X-User-Id", "admin_1")
		req.Header.Set("X-User-Role", "admin")
	default:
		order := fixedOrder
		if rand.Intn(5) == 0 {
			order = "ORD-" + randomID(8)
		}
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders/my/"+order, nil)
		req.Header.Set("X-User-Id", fixedCustomer)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println(req.Method, req.URL.Path, "->", resp.Status)
		resp.Body.Close()
	}
}
