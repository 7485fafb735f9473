package domain

// MenuItem позиция меню
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// MenuCategory категория меню с позициями в порядке показа
type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// CartLine позиция корзины, как её прислал клиент.
// Цена приходит от клиента и сохраняется как есть, без сверки с каталогом.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// CustomerInfo данные получателя заказа
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Notes   string `json:"notes,omitempty"`
}

// PlaceOrderRequest тело запроса POST /api/place-order
type PlaceOrderRequest struct {
	Items        []CartLine   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

// Order сущность заказа; после создания неизменяем, живёт до явного
// удаления или рестарта процесса
type Order struct {
	ID           string       `json:"id"`
	Timestamp    string       `json:"timestamp"`
	Items        []CartLine   `json:"items"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	Total        float64      `json:"total"`
}
